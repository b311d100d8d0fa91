package store

import (
	"context"
	"time"

	"leetremind/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm handle in the ReminderStore interface.
func NewGormStore(db *gorm.DB) ReminderStore {
	return &gormStore{db: db}
}

func (s *gormStore) Insert(ctx context.Context, r *models.Reminder) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *gormStore) FindDue(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	var due []models.Reminder
	err := s.db.WithContext(ctx).
		Where("scheduled_for <= ? AND sent = ?", now, false).
		Order("scheduled_for").
		Find(&due).Error
	return due, err
}

func (s *gormStore) Claim(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND sent = ?", id, false).
		Update("sent", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *gormStore) Release(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ?", id).
		Update("sent", false).Error
}
