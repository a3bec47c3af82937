package controller

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/assets"
	"github.com/ybotev/staffdesk/internal/directory/events"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"github.com/ybotev/staffdesk/internal/directory/query"
)

// MockProfileRepo implements ProfileRepository for testing.
type MockProfileRepo struct {
	createProfile  func(context.Context, *models.CompanyProfile) error
	getProfile     func(context.Context) (*models.CompanyProfile, error)
	getProfileByID func(context.Context, uuid.UUID) (*models.CompanyProfile, error)
	saveProfile    func(context.Context, *models.CompanyProfile) error
	deleteProfile  func(context.Context, uuid.UUID) error
	profileExists  func(context.Context) (bool, error)

	saveCalls   int
	deleteCalls int
}

func (m *MockProfileRepo) CreateProfile(ctx context.Context, p *models.CompanyProfile) error {
	return m.createProfile(ctx, p)
}

func (m *MockProfileRepo) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	return m.getProfile(ctx)
}

func (m *MockProfileRepo) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.CompanyProfile, error) {
	return m.getProfileByID(ctx, id)
}

func (m *MockProfileRepo) SaveProfile(ctx context.Context, p *models.CompanyProfile) error {
	m.saveCalls++
	if m.saveProfile == nil {
		return nil
	}
	return m.saveProfile(ctx, p)
}

func (m *MockProfileRepo) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	if m.deleteProfile == nil {
		return nil
	}
	return m.deleteProfile(ctx, id)
}

func (m *MockProfileRepo) ProfileExists(ctx context.Context) (bool, error) {
	return m.profileExists(ctx)
}

// MockEmployeeRepo implements EmployeeRepository for testing.
type MockEmployeeRepo struct {
	createEmployee      func(context.Context, *models.Employee) error
	getEmployee         func(context.Context, uuid.UUID) (*models.Employee, error)
	saveEmployee        func(context.Context, *models.Employee) error
	deleteEmployee      func(context.Context, uuid.UUID) error
	employeeEmailExists func(context.Context, string, uuid.UUID) (bool, error)
	listEmployees       func(context.Context, query.Options, []string, []string) ([]models.Employee, query.Pagination, error)
	getDepartment       func(context.Context, uuid.UUID) (*models.Department, error)
	departmentExists    func(context.Context, uuid.UUID) (bool, error)

	saveCalls   int
	savedCopy   *models.Employee
	deleteCalls int
}

func (m *MockEmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	return m.createEmployee(ctx, e)
}

func (m *MockEmployeeRepo) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return m.getEmployee(ctx, id)
}

func (m *MockEmployeeRepo) SaveEmployee(ctx context.Context, e *models.Employee) error {
	m.saveCalls++
	saved := *e
	m.savedCopy = &saved
	if m.saveEmployee == nil {
		return nil
	}
	return m.saveEmployee(ctx, e)
}

func (m *MockEmployeeRepo) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	if m.deleteEmployee == nil {
		return nil
	}
	return m.deleteEmployee(ctx, id)
}

func (m *MockEmployeeRepo) EmployeeEmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return m.employeeEmailExists(ctx, email, excludeID)
}

func (m *MockEmployeeRepo) ListEmployees(ctx context.Context, opts query.Options, searchable, sortable []string) ([]models.Employee, query.Pagination, error) {
	return m.listEmployees(ctx, opts, searchable, sortable)
}

func (m *MockEmployeeRepo) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return m.getDepartment(ctx, id)
}

func (m *MockEmployeeRepo) DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.departmentExists(ctx, id)
}

// MockStore records asset-store calls in order so tests can assert the
// delete-then-upload sequencing of image replacement.
type MockStore struct {
	uploadErr error
	deleteErr error

	calls []string
}

func (m *MockStore) Upload(_ context.Context, _ assets.Blob, folder string) (assets.Asset, error) {
	m.calls = append(m.calls, "upload:"+folder)
	if m.uploadErr != nil {
		return assets.Asset{}, m.uploadErr
	}
	return assets.Asset{Key: folder + "/new", URL: "http://assets/" + folder + "/new"}, nil
}

func (m *MockStore) Delete(_ context.Context, key string) error {
	m.calls = append(m.calls, "delete:"+key)
	return m.deleteErr
}

func (m *MockStore) DisplayURL(key string) string {
	return "http://assets/" + key
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []events.EventType
	wg             *sync.WaitGroup
}

func (m *MockProducer) Produce(eventType events.EventType, _ string, _ interface{}) {
	m.mu.Lock()
	m.producedEvents = append(m.producedEvents, eventType)
	m.mu.Unlock()
	if m.wg != nil {
		m.wg.Done()
	}
}

func (m *MockProducer) events() []events.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.EventType(nil), m.producedEvents...)
}

func testBlob() *assets.Blob {
	return &assets.Blob{
		Data:        []byte("fake image bytes"),
		Name:        "avatar.png",
		ContentType: "image/png",
	}
}
