package handlers

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"leetremind/internal/models"
	"leetremind/internal/schedule"
	"leetremind/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetReminder schedules an email reminder for a coding problem. The
// record is persisted first and the confirmation email goes out after,
// so a failed send never loses the reminder.
func (h *Handler) SetReminder(c *gin.Context) {
	var req models.SetReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid input: %s", err.Error())})
		return
	}

	if req.Email == "" || req.ProblemURL == "" || isMissing(req.ReminderMinutes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, problemUrl and reminderMinutes are required"})
		return
	}

	minutes, err := schedule.ParseMinutes(req.ReminderMinutes)
	if err != nil || minutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": `reminderMinutes must be a positive duration like 30, "30m", "2h" or "1d"`})
		return
	}

	now := time.Now()
	reminder := models.Reminder{
		Email:        req.Email,
		ProblemURL:   req.ProblemURL,
		ProblemTitle: req.ProblemTitle,
		ScheduledFor: schedule.At(now, minutes),
		CreatedAt:    now,
	}

	if err := h.store.Insert(c.Request.Context(), &reminder); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to save reminder", err)
		return
	}

	when := schedule.FormatFor(reminder.ScheduledFor)
	if err := h.notifier.SendConfirmation(req.Email, req.ProblemTitle, req.ProblemURL, when); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to send confirmation email", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("Reminder scheduled for %s", when),
		"scheduledFor": when,
	})
}

// CheckReminders is the sweep trigger, guarded by the shared cron secret
// carried in the x-cron-secret header.
func (h *Handler) CheckReminders(c *gin.Context) {
	secret := c.GetHeader("x-cron-secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.cronSecret)) != 1 {
		zap.L().Warn("rejected sweep trigger",
			zap.String("client_ip", utils.GetRealClientIP(c)))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.sweeper.Sweep(c.Request.Context(), time.Now())
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to process reminders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"processedReminders": result.Due,
		"sentReminders":      result.Sent,
		"failedReminders":    result.Failed,
	})
}

// isMissing mirrors absent-or-falsy semantics for the reminderMinutes
// field: nil, an empty string and the number 0 all count as missing.
func isMissing(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == ""
	case float64:
		return n == 0
	}
	return false
}
