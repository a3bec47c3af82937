// Package controller implements the business logic for the directory
// backend: the singleton company profile, the employee directory, and
// admin authentication. Services coordinate the record store and the
// asset store; the two are never written transactionally, so ordering of
// the dual writes is the only consistency tool.
package controller

import (
	"context"

	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/events"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"github.com/ybotev/staffdesk/internal/directory/query"
)

// EventProducer publishes lifecycle events for directory records.
type EventProducer interface {
	Produce(eventType events.EventType, id string, payload interface{})
}

// ProfileRepository is the storage interface for the company profile.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.CompanyProfile) error
	GetProfile(ctx context.Context) (*models.CompanyProfile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.CompanyProfile, error)
	SaveProfile(ctx context.Context, profile *models.CompanyProfile) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	ProfileExists(ctx context.Context) (bool, error)
}

// EmployeeRepository is the storage interface for the employee directory
// and its department references.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	SaveEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	EmployeeEmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	ListEmployees(ctx context.Context, opts query.Options, searchable, sortable []string) ([]models.Employee, query.Pagination, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)
	DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// AdminRepository is the storage interface for administrator accounts.
type AdminRepository interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}
