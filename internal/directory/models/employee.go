package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLinks holds the four optional social profile URLs of an employee.
// Empty string is the canonical "unset" value; updates overwrite the
// whole structure as a unit.
type SocialLinks struct {
	Facebook  string `gorm:"size:1024" json:"facebook"`
	Twitter   string `gorm:"size:1024" json:"twitter"`
	Instagram string `gorm:"size:1024" json:"instagram"`
	YouTube   string `gorm:"size:1024;column:youtube" json:"youtube"`
}

// Employee is a directory record. Email is stored lowercased and carries
// a unique index, the only storage-level guard behind the service-layer
// duplicate check.
type Employee struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string      `gorm:"size:200;not null" json:"name"`
	Email        string      `gorm:"size:320;not null;uniqueIndex" json:"email"`
	PhoneNumber  string      `gorm:"size:30" json:"phone_number"`
	Age          int         `json:"age"`
	JoiningDate  string      `gorm:"size:30" json:"joining_date"`
	Designation  string      `gorm:"size:200" json:"designation"`
	DepartmentID uuid.UUID   `gorm:"type:uuid;not null;index" json:"department_id"`
	AboutMe      string      `json:"about_me"`
	Address      string      `json:"address"`
	SocialLinks  SocialLinks `gorm:"embedded;embeddedPrefix:social_" json:"social_links"`
	ProfileImage ImageAsset  `gorm:"embedded" json:"profile_image"`
	CreatedAt    time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// EmployeeUpdate carries a partial update for an employee. Scalar fields
// use pointers ("absent" vs empty); SocialLinks is a whole-unit value
// where an absent sub-field arrives as "" and clears the stored link.
type EmployeeUpdate struct {
	Name         *string
	Email        *string
	PhoneNumber  *string
	Age          *int
	JoiningDate  *string
	Designation  *string
	DepartmentID *uuid.UUID
	AboutMe      *string
	Address      *string
	SocialLinks  SocialLinks
}

// DepartmentRef is the partial department projection attached to a
// single-employee read.
type DepartmentRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// EmployeeDetail is an employee with its department reference resolved.
type EmployeeDetail struct {
	Employee
	Department DepartmentRef `json:"department"`
}
