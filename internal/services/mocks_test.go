package services

import (
	"context"
	"time"

	"transfer-backend/internal/email"
	"transfer-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserStore) Get(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserStore) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *MockUserStore) Update(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleStore
type MockVehicleStore struct {
	mock.Mock
}

func (m *MockVehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleStore) Get(ctx context.Context, id int) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}
func (m *MockVehicleStore) List(ctx context.Context) ([]*models.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}
func (m *MockVehicleStore) Update(ctx context.Context, v *models.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPriceLookup
type MockPriceLookup struct {
	mock.Mock
}

func (m *MockPriceLookup) GetByClassAndType(ctx context.Context, serviceClass, serviceType string) (*models.PriceList, error) {
	args := m.Called(ctx, serviceClass, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PriceList), args.Error(1)
}

// MockTransferStore
type MockTransferStore struct {
	mock.Mock
}

func (m *MockTransferStore) Create(ctx context.Context, t *models.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTransferStore) Get(ctx context.Context, id int) (*models.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transfer), args.Error(1)
}
func (m *MockTransferStore) List(ctx context.Context) ([]*models.Transfer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Transfer), args.Error(1)
}
func (m *MockTransferStore) ListByClient(ctx context.Context, clientID int) ([]*models.Transfer, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]*models.Transfer), args.Error(1)
}
func (m *MockTransferStore) ListByOperator(ctx context.Context, operatorID int) ([]*models.Transfer, error) {
	args := m.Called(ctx, operatorID)
	return args.Get(0).([]*models.Transfer), args.Error(1)
}
func (m *MockTransferStore) ListCompletedOn(ctx context.Context, dayStart, dayEnd time.Time) ([]*models.Transfer, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	return args.Get(0).([]*models.Transfer), args.Error(1)
}
func (m *MockTransferStore) Update(ctx context.Context, t *models.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTransferStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockServiceRequestStore
type MockServiceRequestStore struct {
	mock.Mock
}

func (m *MockServiceRequestStore) Create(ctx context.Context, sr *models.ServiceRequest) error {
	args := m.Called(ctx, sr)
	return args.Error(0)
}
func (m *MockServiceRequestStore) Get(ctx context.Context, id int) (*models.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}
func (m *MockServiceRequestStore) List(ctx context.Context) ([]*models.ServiceRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.ServiceRequest), args.Error(1)
}
func (m *MockServiceRequestStore) ListByRequester(ctx context.Context, requesterID int) ([]*models.ServiceRequest, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]*models.ServiceRequest), args.Error(1)
}
func (m *MockServiceRequestStore) Update(ctx context.Context, sr *models.ServiceRequest) error {
	args := m.Called(ctx, sr)
	return args.Error(0)
}

// MockDailyReportStore
type MockDailyReportStore struct {
	mock.Mock
}

func (m *MockDailyReportStore) Insert(ctx context.Context, report *models.DailyReport) (bool, error) {
	args := m.Called(ctx, report)
	return args.Bool(0), args.Error(1)
}
func (m *MockDailyReportStore) Get(ctx context.Context, id int) (*models.DailyReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyReport), args.Error(1)
}
func (m *MockDailyReportStore) GetByDate(ctx context.Context, date time.Time) (*models.DailyReport, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyReport), args.Error(1)
}
func (m *MockDailyReportStore) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}
func (m *MockDailyReportStore) List(ctx context.Context) ([]*models.DailyReport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.DailyReport), args.Error(1)
}

// MockEmailProvider records sent emails instead of delivering them
type MockEmailProvider struct {
	mock.Mock
}

func (m *MockEmailProvider) Send(to, toName, subject, body string, transferID int) error {
	args := m.Called(to, toName, subject, body, transferID)
	return args.Error(0)
}
func (m *MockEmailProvider) SetLogRepository(repo email.EmailLogRepo) {}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
