package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/assets"
	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/events"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"github.com/ybotev/staffdesk/internal/directory/query"
	"go.uber.org/zap"
)

const employeeFolder = "employee_profiles"

var (
	employeeSearchFields = []string{"name", "email", "phone_number", "designation"}
	employeeSortFields   = []string{"name", "email", "created_at"}
)

// EmployeeService manages directory records: email uniqueness, department
// references, the bound image asset and the listing endpoint.
type EmployeeService struct {
	repo     EmployeeRepository
	store    assets.Store
	producer EventProducer
	logger   *zap.Logger
}

func NewEmployeeService(repo EmployeeRepository, store assets.Store, producer EventProducer, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		store:    store,
		producer: producer,
		logger:   logger.Named("employee_service"),
	}
}

// Create adds an employee. The email uniqueness and department existence
// checks run before the upload so a doomed request leaves no asset
// behind; the email is normalized to lower case before both the check and
// storage.
func (s *EmployeeService) Create(ctx context.Context, employee *models.Employee, image *assets.Blob) (*models.Employee, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: profile image is required", e.ErrInvalidInput)
	}
	if employee.Name == "" {
		return nil, fmt.Errorf("%w: name is required", e.ErrInvalidInput)
	}
	if employee.Email == "" {
		return nil, fmt.Errorf("%w: email is required", e.ErrInvalidInput)
	}

	employee.Email = strings.ToLower(employee.Email)

	taken, err := s.repo.EmployeeEmailExists(ctx, employee.Email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if taken {
		return nil, e.ErrDuplicateEmail
	}

	exists, err := s.repo.DepartmentExists(ctx, employee.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check department existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: department", e.ErrNotFound)
	}

	asset, err := s.store.Upload(ctx, *image, employeeFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload profile image: %w", err)
	}

	employee.ID = uuid.New()
	employee.ProfileImage = models.ImageAsset{Key: asset.Key, URL: asset.URL}
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		// The uploaded asset is orphaned here; cleanup is out-of-band.
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	go func() {
		s.producer.Produce(events.EmployeeCreated, employee.ID.String(), employee)
	}()
	return employee, nil
}

// List returns a filtered, sorted, paginated slice of the directory.
func (s *EmployeeService) List(ctx context.Context, opts query.Options) ([]models.Employee, query.Pagination, error) {
	employees, pagination, err := s.repo.ListEmployees(ctx, opts, employeeSearchFields, employeeSortFields)
	if err != nil {
		return nil, query.Pagination{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, pagination, nil
}

// GetByID returns an employee with its department resolved to the
// name/email projection.
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*models.EmployeeDetail, error) {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	detail := &models.EmployeeDetail{
		Employee:   *employee,
		Department: models.DepartmentRef{ID: employee.DepartmentID},
	}
	department, err := s.repo.GetDepartment(ctx, employee.DepartmentID)
	if err == nil {
		detail.Department.Name = department.Name
		detail.Department.Email = department.Email
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve department: %w", err)
	}
	return detail, nil
}

// Update applies a partial update with raw (non-trimmed) equality change
// detection. Scalars are overwritten per-field when present; social links
// are overwritten as a whole unit, so a previously set link is cleared
// when its sub-field is omitted. Email uniqueness is re-checked only when
// the normalized email changes, department existence only when the id
// changes. Image replacement deletes the old asset before uploading the
// new one, with no rollback.
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, update *models.EmployeeUpdate, image *assets.Blob) (*models.Employee, error) {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	newEmail := employee.Email
	if update.Email != nil && *update.Email != "" {
		newEmail = strings.ToLower(*update.Email)
	}
	newDepartment := employee.DepartmentID
	if update.DepartmentID != nil && *update.DepartmentID != uuid.Nil {
		newDepartment = *update.DepartmentID
	}

	unchanged := newEmail == employee.Email &&
		newDepartment == employee.DepartmentID &&
		image == nil &&
		update.SocialLinks == employee.SocialLinks &&
		scalarsUnchanged(employee, update)
	if unchanged {
		return employee, nil
	}

	if newEmail != employee.Email {
		taken, err := s.repo.EmployeeEmailExists(ctx, newEmail, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if taken {
			return nil, e.ErrDuplicateEmail
		}
		employee.Email = newEmail
	}

	if newDepartment != employee.DepartmentID {
		exists, err := s.repo.DepartmentExists(ctx, newDepartment)
		if err != nil {
			return nil, fmt.Errorf("failed to check department existence: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: department", e.ErrNotFound)
		}
		employee.DepartmentID = newDepartment
	}

	applyScalars(employee, update)
	employee.SocialLinks = update.SocialLinks

	if image != nil {
		if err := s.store.Delete(ctx, employee.ProfileImage.Key); err != nil {
			return nil, fmt.Errorf("failed to delete previous profile image: %w", err)
		}
		asset, err := s.store.Upload(ctx, *image, employeeFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile image: %w", err)
		}
		employee.ProfileImage = models.ImageAsset{Key: asset.Key, URL: asset.URL}
	}

	if err := s.repo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	go func() {
		s.producer.Produce(events.EmployeeUpdated, employee.ID.String(), employee)
	}()
	return employee, nil
}

// Delete removes the asset first; if that fails the record is kept and
// the error surfaced.
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get employee for deletion: %w", err)
	}

	if err := s.store.Delete(ctx, employee.ProfileImage.Key); err != nil {
		return fmt.Errorf("failed to delete profile image: %w", err)
	}
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	go func() {
		s.producer.Produce(events.EmployeeDeleted, employee.ID.String(), nil)
	}()
	return nil
}

// scalarsUnchanged compares every request-present scalar against the
// stored value with plain equality. Unlike the profile update path,
// values are not trimmed.
func scalarsUnchanged(employee *models.Employee, update *models.EmployeeUpdate) bool {
	if update.Name != nil && *update.Name != employee.Name {
		return false
	}
	if update.PhoneNumber != nil && *update.PhoneNumber != employee.PhoneNumber {
		return false
	}
	if update.Age != nil && *update.Age != employee.Age {
		return false
	}
	if update.JoiningDate != nil && *update.JoiningDate != employee.JoiningDate {
		return false
	}
	if update.Designation != nil && *update.Designation != employee.Designation {
		return false
	}
	if update.AboutMe != nil && *update.AboutMe != employee.AboutMe {
		return false
	}
	if update.Address != nil && *update.Address != employee.Address {
		return false
	}
	return true
}

func applyScalars(employee *models.Employee, update *models.EmployeeUpdate) {
	if update.Name != nil {
		employee.Name = *update.Name
	}
	if update.PhoneNumber != nil {
		employee.PhoneNumber = *update.PhoneNumber
	}
	if update.Age != nil {
		employee.Age = *update.Age
	}
	if update.JoiningDate != nil {
		employee.JoiningDate = *update.JoiningDate
	}
	if update.Designation != nil {
		employee.Designation = *update.Designation
	}
	if update.AboutMe != nil {
		employee.AboutMe = *update.AboutMe
	}
	if update.Address != nil {
		employee.Address = *update.Address
	}
}
