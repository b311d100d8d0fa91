package services

import (
	"context"
	"fmt"
	"time"

	"leetremind/internal/store"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper finds due reminders and emails them. The HTTP trigger and the
// optional background schedule both run through Sweep.
type Sweeper struct {
	store    store.ReminderStore
	notifier Notifier
	cron     *cron.Cron
}

func NewSweeper(st store.ReminderStore, notifier Notifier) *Sweeper {
	return &Sweeper{
		store:    st,
		notifier: notifier,
	}
}

// SweepResult summarizes one pass over the due reminders. Due counts the
// records fetched; Sent and Failed partition the ones this pass claimed.
type SweepResult struct {
	Due    int
	Sent   int
	Failed int
}

// Sweep processes every reminder due at now. Each record is claimed with
// a conditional update before the email goes out, so concurrent sweeps
// never double-send. A failed send releases the claim for a later retry
// and the loop continues with the remaining records.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (SweepResult, error) {
	due, err := s.store.FindDue(ctx, now)
	if err != nil {
		return SweepResult{}, fmt.Errorf("fetch due reminders: %w", err)
	}

	result := SweepResult{Due: len(due)}
	for _, r := range due {
		claimed, err := s.store.Claim(ctx, r.ID)
		if err != nil {
			zap.L().Error("failed to claim reminder",
				zap.String("reminder_id", r.ID.String()),
				zap.Error(err))
			result.Failed++
			continue
		}
		if !claimed {
			// Another sweep got there first.
			continue
		}

		if err := s.notifier.SendDueReminder(r.Email, r.ProblemTitle, r.ProblemURL); err != nil {
			zap.L().Error("failed to send due reminder",
				zap.String("reminder_id", r.ID.String()),
				zap.String("email", r.Email),
				zap.Error(err))
			if relErr := s.store.Release(ctx, r.ID); relErr != nil {
				zap.L().Error("failed to release claimed reminder",
					zap.String("reminder_id", r.ID.String()),
					zap.Error(relErr))
			}
			result.Failed++
			continue
		}
		result.Sent++
	}

	return result, nil
}

// Start schedules background sweeps using a cron expression such as
// "@every 5m". The HTTP trigger keeps working either way.
func (s *Sweeper) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		result, err := s.Sweep(context.Background(), time.Now())
		if err != nil {
			zap.L().Error("background sweep failed", zap.Error(err))
			return
		}
		if result.Due > 0 {
			zap.L().Info("background sweep finished",
				zap.Int("due", result.Due),
				zap.Int("sent", result.Sent),
				zap.Int("failed", result.Failed))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule background sweep: %w", err)
	}
	c.Start()
	s.cron = c
	return nil
}

// Stop halts the background schedule if one was started.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
