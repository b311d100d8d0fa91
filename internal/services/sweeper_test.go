package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"leetremind/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	reminders map[uuid.UUID]*models.Reminder
	findErr   error
	claimErr  error
	released  []uuid.UUID
}

func newFakeStore(reminders ...*models.Reminder) *fakeStore {
	st := &fakeStore{reminders: make(map[uuid.UUID]*models.Reminder)}
	for _, r := range reminders {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		st.reminders[r.ID] = r
	}
	return st
}

func (f *fakeStore) Insert(ctx context.Context, r *models.Reminder) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.reminders[r.ID] = r
	return nil
}

func (f *fakeStore) FindDue(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var due []models.Reminder
	for _, r := range f.reminders {
		if !r.Sent && !r.ScheduledFor.After(now) {
			due = append(due, *r)
		}
	}
	return due, nil
}

func (f *fakeStore) Claim(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.claimErr != nil {
		return false, f.claimErr
	}
	r, ok := f.reminders[id]
	if !ok || r.Sent {
		return false, nil
	}
	r.Sent = true
	return true, nil
}

func (f *fakeStore) Release(ctx context.Context, id uuid.UUID) error {
	f.released = append(f.released, id)
	if r, ok := f.reminders[id]; ok {
		r.Sent = false
	}
	return nil
}

type fakeNotifier struct {
	confirmations []string
	dueReminders  []string
	failFor       map[string]error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{failFor: make(map[string]error)}
}

func (f *fakeNotifier) SendConfirmation(toEmail, problemTitle, problemURL, scheduledFor string) error {
	if err := f.failFor[toEmail]; err != nil {
		return err
	}
	f.confirmations = append(f.confirmations, toEmail)
	return nil
}

func (f *fakeNotifier) SendDueReminder(toEmail, problemTitle, problemURL string) error {
	if err := f.failFor[toEmail]; err != nil {
		return err
	}
	f.dueReminders = append(f.dueReminders, toEmail)
	return nil
}

func dueReminder(email string, scheduledFor time.Time) *models.Reminder {
	return &models.Reminder{
		Email:        email,
		ProblemURL:   "https://leetcode.com/problems/two-sum",
		ProblemTitle: "Two Sum",
		ScheduledFor: scheduledFor,
		CreatedAt:    scheduledFor.Add(-time.Hour),
	}
}

func TestSweepSendsAndMarksDueReminders(t *testing.T) {
	now := time.Now()
	r := dueReminder("dev@example.com", now.Add(-time.Minute))
	st := newFakeStore(r)
	notifier := newFakeNotifier()

	result, err := NewSweeper(st, notifier).Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Due)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, []string{"dev@example.com"}, notifier.dueReminders)
	assert.True(t, st.reminders[r.ID].Sent)
}

func TestSweepSkipsFutureAndSentReminders(t *testing.T) {
	now := time.Now()
	future := dueReminder("future@example.com", now.Add(time.Hour))
	sent := dueReminder("sent@example.com", now.Add(-time.Hour))
	sent.Sent = true
	st := newFakeStore(future, sent)
	notifier := newFakeNotifier()

	result, err := NewSweeper(st, notifier).Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Due)
	assert.Empty(t, notifier.dueReminders)
}

func TestSweepContinuesPastFailedSendAndReleasesClaim(t *testing.T) {
	now := time.Now()
	failing := dueReminder("broken@example.com", now.Add(-2*time.Minute))
	ok := dueReminder("fine@example.com", now.Add(-time.Minute))
	st := newFakeStore(failing, ok)
	notifier := newFakeNotifier()
	notifier.failFor["broken@example.com"] = errors.New("smtp timeout")

	result, err := NewSweeper(st, notifier).Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Due)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)

	// The failed record is released so the next sweep retries it.
	assert.Contains(t, st.released, failing.ID)
	assert.False(t, st.reminders[failing.ID].Sent)
	assert.True(t, st.reminders[ok.ID].Sent)
}

func TestSweepReportsStoreFailure(t *testing.T) {
	st := newFakeStore()
	st.findErr = errors.New("connection refused")

	_, err := NewSweeper(st, newFakeNotifier()).Sweep(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch due reminders")
}
