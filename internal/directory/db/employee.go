package db

import (
	"context"
	"errors"

	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"github.com/ybotev/staffdesk/internal/directory/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	result := r.db.WithContext(ctx).Create(employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicateEmail
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.WithContext(ctx).First(&employee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &employee, nil
}

// SaveEmployee writes back a loaded and mutated employee row.
func (r *Repository) SaveEmployee(ctx context.Context, employee *models.Employee) error {
	result := r.db.WithContext(ctx).Save(employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicateEmail
		}
		return result.Error
	}
	return nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// EmployeeEmailExists reports whether another employee already holds the
// given (normalized) email. excludeID skips the record being updated;
// pass uuid.Nil on create.
func (r *Repository) EmployeeEmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("email = ?", email)
	if excludeID != uuid.Nil {
		tx = tx.Where("id <> ?", excludeID)
	}
	result := tx.Limit(1).Count(&count)
	return count > 0, result.Error
}

// ListEmployees applies the search/sort/pagination options over the
// employee collection.
func (r *Repository) ListEmployees(ctx context.Context, opts query.Options, searchable, sortable []string) ([]models.Employee, query.Pagination, error) {
	base := r.db.WithContext(ctx).Model(&models.Employee{})
	return query.Apply[models.Employee](base, opts, searchable, sortable)
}

func (r *Repository) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	var department models.Department
	result := r.db.WithContext(ctx).First(&department, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &department, nil
}

func (r *Repository) DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Department{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
