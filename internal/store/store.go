// Package store persists reminders. Handlers and the sweeper depend on
// the ReminderStore interface so tests can substitute doubles.
package store

import (
	"context"
	"time"

	"leetremind/internal/models"

	"github.com/google/uuid"
)

// ReminderStore is the persistence surface for reminders.
type ReminderStore interface {
	// Insert saves a new reminder record.
	Insert(ctx context.Context, r *models.Reminder) error
	// FindDue returns every reminder scheduled at or before now that has
	// not been sent yet.
	FindDue(ctx context.Context, now time.Time) ([]models.Reminder, error)
	// Claim flips the sent flag to true only if it is still false and
	// reports whether this caller won the claim. Concurrent sweeps cannot
	// both claim the same reminder.
	Claim(ctx context.Context, id uuid.UUID) (bool, error)
	// Release undoes a claim after a failed notification so a later
	// sweep retries the reminder.
	Release(ctx context.Context, id uuid.UUID) error
}
