package db

import (
	"context"
	"errors"

	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateProfile(ctx context.Context, profile *models.CompanyProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetProfile returns the singleton profile row, if any.
func (r *Repository) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	result := r.db.WithContext(ctx).Order("created_at").First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &profile, nil
}

func (r *Repository) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	result := r.db.WithContext(ctx).First(&profile, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &profile, nil
}

// SaveProfile writes back a loaded and mutated profile row.
func (r *Repository) SaveProfile(ctx context.Context, profile *models.CompanyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *Repository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyProfile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// ProfileExists reports whether any profile row exists. There is no
// unique constraint backing the singleton; this check is the only guard.
func (r *Repository) ProfileExists(ctx context.Context) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.CompanyProfile{}).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
