package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole is the role of an administrator account.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super-admin"
	RoleAdmin      AdminRole = "admin"
)

// Admin is an administrator account. The password hash is never
// serialized; tokens reference the account by ID.
type Admin struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string     `gorm:"size:100;not null" json:"full_name"`
	Email        string     `gorm:"size:320;not null;uniqueIndex" json:"email"`
	PhoneNumber  string     `gorm:"size:30;uniqueIndex" json:"phone_number"`
	PasswordHash string     `gorm:"size:60;not null" json:"-"`
	Role         AdminRole  `gorm:"size:20;default:admin" json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	ProfileImage ImageAsset `gorm:"embedded" json:"profile_image"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
