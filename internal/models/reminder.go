package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder is a scheduled email nudge for a coding problem. Records are
// immutable after creation except for the one-way Sent transition.
type Reminder struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;index" json:"email"`
	ProblemURL   string    `gorm:"size:2048;not null" json:"problem_url"`
	ProblemTitle string    `gorm:"size:255" json:"problem_title"`
	ScheduledFor time.Time `gorm:"not null;index" json:"scheduled_for"`
	Sent         bool      `gorm:"not null;default:false;index" json:"sent"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate assigns a fresh ID when the caller did not set one
func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// SetReminderRequest is the body of POST /api/set-reminder.
// ReminderMinutes accepts either a JSON number (minutes) or a duration
// string such as "30m", "2h" or "1d".
type SetReminderRequest struct {
	Email           string `json:"email"`
	ProblemURL      string `json:"problemUrl"`
	ProblemTitle    string `json:"problemTitle"`
	ReminderMinutes any    `json:"reminderMinutes"`
}
