package repository

import (
	"context"
	"errors"

	"barberpro-backend/models"

	"gorm.io/gorm"
)

const settingsRowID = 1

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

// Current returns the persisted fee settings, or zero rates when none exist.
func (r *SettingsRepository) Current(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	err := r.db.WithContext(ctx).First(&s, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Settings{}, nil
	}
	return s, err
}

func (r *SettingsRepository) Update(ctx context.Context, s models.Settings) (models.Settings, error) {
	s.ID = settingsRowID
	if err := r.db.WithContext(ctx).Save(&s).Error; err != nil {
		return models.Settings{}, err
	}
	return s, nil
}
