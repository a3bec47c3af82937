package models

import (
	"time"

	"github.com/google/uuid"
)

// Department is an external collaborator entity. The directory service
// only checks existence and reads the name/email projection; department
// lifecycle is managed elsewhere.
type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:320" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
