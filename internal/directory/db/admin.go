package db

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	admin.Email = strings.ToLower(admin.Email)
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *Repository) GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	result := r.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &admin, nil
}

func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	result := r.db.WithContext(ctx).First(&admin, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &admin, nil
}
