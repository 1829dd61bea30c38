package repository

import (
	"context"

	"gorm.io/gorm"

	"propwrite/internal/model"
)

// ProfileRepository defines quota-state persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uint) (*model.Profile, error)
	UpdateQuota(ctx context.Context, userID uint, count int, date string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateQuota overwrites the stored counter and date for a user.
func (r *profileRepository) UpdateQuota(ctx context.Context, userID uint, count int, date string) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"daily_generations_count": count,
			"last_generation_date":    date,
		}).Error
}
