package services

import (
	"fmt"

	"leetremind/internal/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier delivers reminder emails. EmailService is the production
// implementation; tests substitute fakes.
type Notifier interface {
	SendConfirmation(toEmail, problemTitle, problemURL, scheduledFor string) error
	SendDueReminder(toEmail, problemTitle, problemURL string) error
}

const defaultProblemLabel = "your coding problem"

type EmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.SendGridConfig) *EmailService {
	return &EmailService{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// SendConfirmation tells the user their reminder was scheduled and when
// it will fire.
func (s *EmailService) SendConfirmation(toEmail, problemTitle, problemURL, scheduledFor string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	title := problemTitle
	if title == "" {
		title = defaultProblemLabel
	}

	subject := fmt.Sprintf("Reminder scheduled: %s", title)
	plainContent := fmt.Sprintf("Your reminder for %s (%s) is scheduled for %s.",
		title, problemURL, scheduledFor)
	htmlContent := fmt.Sprintf("<p>Your reminder for <strong>%s</strong> is scheduled for %s.</p><p><a href=\"%s\">%s</a></p>",
		title, scheduledFor, problemURL, problemURL)

	return s.send(mail.NewSingleEmail(from, subject, to, plainContent, htmlContent), toEmail)
}

// SendDueReminder nudges the user that it is time to revisit the problem.
func (s *EmailService) SendDueReminder(toEmail, problemTitle, problemURL string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	title := problemTitle
	if title == "" {
		title = defaultProblemLabel
	}

	subject := fmt.Sprintf("Time to solve: %s", title)
	plainContent := fmt.Sprintf("It's time to revisit %s. Solve it here: %s", title, problemURL)
	htmlContent := fmt.Sprintf("<p>It's time to revisit <strong>%s</strong>.</p><p><a href=\"%s\">Solve it now</a></p>",
		title, problemURL)

	return s.send(mail.NewSingleEmail(from, subject, to, plainContent, htmlContent), toEmail)
}

func (s *EmailService) send(message *mail.SGMailV3, toEmail string) error {
	response, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email to %s: %d", toEmail, response.StatusCode)
	}
	return nil
}
