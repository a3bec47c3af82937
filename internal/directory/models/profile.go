// Package models defines the domain models persisted by the directory
// service: the singleton CompanyProfile, Employee records with their
// department reference, and the Admin accounts that operate the backend.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageAsset is the binding to an externally stored image: an opaque
// storage key plus the URL it was retrievable under at write time.
type ImageAsset struct {
	Key string `gorm:"column:image_key;size:255" json:"public_id"`
	URL string `gorm:"column:image_url;size:1024" json:"url"`
}

// CompanyProfile is the singleton company record. At most one row may
// exist; the singleton check lives in the service layer and has no
// storage-level backstop.
type CompanyProfile struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName       string     `gorm:"size:150;not null" json:"company_name"`
	WebsiteLink       string     `gorm:"size:1024" json:"website_link"`
	Established       string     `gorm:"size:30" json:"established"`
	Address           string     `gorm:"not null" json:"address"`
	ButtonName        string     `gorm:"size:50" json:"button_name"`
	ButtonRedirectURL string     `gorm:"size:1024" json:"button_redirect_url"`
	ProfileImage      ImageAsset `gorm:"embedded" json:"profile_image"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ProfileUpdate carries a partial update for the company profile.
// Pointer fields distinguish "absent from the request" from an empty value.
type ProfileUpdate struct {
	CompanyName       *string
	WebsiteLink       *string
	Established       *string
	Address           *string
	ButtonName        *string
	ButtonRedirectURL *string
}
