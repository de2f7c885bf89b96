package services

import (
	"context"
	"testing"
	"time"

	"transfer-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransferService(repo *MockTransferStore, users *MockUserStore, vehicles *MockVehicleStore, prices *MockPriceLookup, provider *MockEmailProvider) *TransferService {
	return NewTransferService(repo, users, vehicles, NewPricingService(prices), provider)
}

func TestTransferService_CreateAsClient(t *testing.T) {
	repo := new(MockTransferStore)
	users := new(MockUserStore)
	vehicles := new(MockVehicleStore)
	prices := new(MockPriceLookup)
	provider := new(MockEmailProvider)
	svc := newTransferService(repo, users, vehicles, prices, provider)
	ctx := context.Background()

	client := &models.User{ID: 7, Role: models.RoleClient}
	req := &models.CreateTransferRequest{
		ServiceType:        models.ServicePointToPoint,
		StartLocation:      "Airport",
		EndLocation:        strPtr("Hotel Plaza"),
		ScheduledStartTime: time.Now().Add(24 * time.Hour),
	}

	repo.On("Create", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)

	transfer, err := svc.Create(ctx, client, req)
	require.NoError(t, err)

	assert.Equal(t, 7, transfer.ClientID)
	assert.Equal(t, models.StatusRequested, transfer.Status)
	// No vehicle attached, so no pricing happened
	assert.Nil(t, transfer.ServiceValue)
	assert.Nil(t, transfer.ServiceCost)
	prices.AssertNotCalled(t, "GetByClassAndType")
}

func TestTransferService_CreateAsAdminForClient(t *testing.T) {
	repo := new(MockTransferStore)
	users := new(MockUserStore)
	vehicles := new(MockVehicleStore)
	prices := new(MockPriceLookup)
	provider := new(MockEmailProvider)
	svc := newTransferService(repo, users, vehicles, prices, provider)
	ctx := context.Background()

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	users.On("Get", ctx, 7).Return(&models.User{ID: 7, Role: models.RoleClient}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)

	transfer, err := svc.Create(ctx, admin, &models.CreateTransferRequest{
		ClientID:           intPtr(7),
		ServiceType:        models.ServicePointToPoint,
		StartLocation:      "Airport",
		ScheduledStartTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, transfer.ClientID)
}

func TestTransferService_CreateAdminRequiresClient(t *testing.T) {
	svc := newTransferService(new(MockTransferStore), new(MockUserStore), new(MockVehicleStore), new(MockPriceLookup), new(MockEmailProvider))

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	_, err := svc.Create(context.Background(), admin, &models.CreateTransferRequest{
		ServiceType:        models.ServicePointToPoint,
		StartLocation:      "Airport",
		ScheduledStartTime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTransferService_CreateRejectsEndUser(t *testing.T) {
	svc := newTransferService(new(MockTransferStore), new(MockUserStore), new(MockVehicleStore), new(MockPriceLookup), new(MockEmailProvider))

	enduser := &models.User{ID: 3, Role: models.RoleEndUser}
	_, err := svc.Create(context.Background(), enduser, &models.CreateTransferRequest{
		ServiceType:        models.ServicePointToPoint,
		StartLocation:      "Airport",
		ScheduledStartTime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestTransferService_CreateWithVehiclePricesOnce(t *testing.T) {
	repo := new(MockTransferStore)
	users := new(MockUserStore)
	vehicles := new(MockVehicleStore)
	prices := new(MockPriceLookup)
	provider := new(MockEmailProvider)
	svc := newTransferService(repo, users, vehicles, prices, provider)
	ctx := context.Background()

	client := &models.User{ID: 7, Role: models.RoleClient}
	vehicles.On("Get", ctx, 4).Return(&models.Vehicle{ID: 4, ServiceClass: models.ClassVan}, nil)
	prices.On("GetByClassAndType", ctx, models.ClassVan, models.ServicePointToPoint).
		Return(&models.PriceList{PricePerKM: floatPtr(2.0), OperatorRate: 20.0}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)

	transfer, err := svc.Create(ctx, client, &models.CreateTransferRequest{
		ServiceType:        models.ServicePointToPoint,
		StartLocation:      "Airport",
		ScheduledStartTime: time.Now().Add(time.Hour),
		VehicleID:          intPtr(4),
	})
	require.NoError(t, err)
	require.NotNil(t, transfer.ServiceValue)
	assert.Equal(t, 55.0, *transfer.ServiceValue)
	assert.Equal(t, 20.0, *transfer.ServiceCost)
}

func TestTransferService_GetInvisibleBehavesAsMissing(t *testing.T) {
	repo := new(MockTransferStore)
	svc := newTransferService(repo, new(MockUserStore), new(MockVehicleStore), new(MockPriceLookup), new(MockEmailProvider))
	ctx := context.Background()

	repo.On("Get", ctx, 9).Return(&models.Transfer{ID: 9, ClientID: 1}, nil)

	otherClient := &models.User{ID: 2, Role: models.RoleClient}
	_, err := svc.Get(ctx, otherClient, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransferService_ListScopesByRole(t *testing.T) {
	repo := new(MockTransferStore)
	svc := newTransferService(repo, new(MockUserStore), new(MockVehicleStore), new(MockPriceLookup), new(MockEmailProvider))
	ctx := context.Background()

	all := []*models.Transfer{{ID: 1}, {ID: 2}}
	own := []*models.Transfer{{ID: 1}}
	assigned := []*models.Transfer{{ID: 2}}

	repo.On("List", ctx).Return(all, nil)
	repo.On("ListByClient", ctx, 7).Return(own, nil)
	repo.On("ListByOperator", ctx, 5).Return(assigned, nil)

	got, err := svc.List(ctx, &models.User{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(ctx, &models.User{ID: 7, Role: models.RoleClient})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.List(ctx, &models.User{ID: 5, Role: models.RoleOperator})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Endusers see nothing through the transfer listing
	got, err = svc.List(ctx, &models.User{ID: 3, Role: models.RoleEndUser})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransferService_ConfirmSendsEmail(t *testing.T) {
	repo := new(MockTransferStore)
	users := new(MockUserStore)
	provider := new(MockEmailProvider)
	svc := newTransferService(repo, users, new(MockVehicleStore), new(MockPriceLookup), provider)
	ctx := context.Background()

	existing := &models.Transfer{
		ID:            12,
		ClientID:      7,
		Status:        models.StatusRequested,
		StartLocation: "Airport",
		EndLocation:   strPtr("Hotel Plaza"),
	}
	repo.On("Get", ctx, 12).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)
	users.On("Get", ctx, 7).Return(&models.User{ID: 7, Name: "Acme Travel", Email: "ops@acme.test", Role: models.RoleClient}, nil)
	provider.On("Send", "ops@acme.test", "Acme Travel", "Transfer 12 confirmed", mock.AnythingOfType("string"), 12).Return(nil)

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	updated, err := svc.Update(ctx, admin, 12, &models.UpdateTransferRequest{Status: strPtr(models.StatusConfirmed)})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	provider.AssertCalled(t, "Send", "ops@acme.test", "Acme Travel", "Transfer 12 confirmed", mock.AnythingOfType("string"), 12)
}

func TestTransferService_ReconfirmDoesNotResend(t *testing.T) {
	repo := new(MockTransferStore)
	users := new(MockUserStore)
	provider := new(MockEmailProvider)
	svc := newTransferService(repo, users, new(MockVehicleStore), new(MockPriceLookup), provider)
	ctx := context.Background()

	existing := &models.Transfer{ID: 12, ClientID: 7, Status: models.StatusConfirmed, StartLocation: "Airport"}
	repo.On("Get", ctx, 12).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	_, err := svc.Update(ctx, admin, 12, &models.UpdateTransferRequest{Status: strPtr(models.StatusConfirmed)})
	require.NoError(t, err)
	provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferService_CompleteWithoutConfirmDoesNotEmail(t *testing.T) {
	repo := new(MockTransferStore)
	users := new(MockUserStore)
	provider := new(MockEmailProvider)
	svc := newTransferService(repo, users, new(MockVehicleStore), new(MockPriceLookup), provider)
	ctx := context.Background()

	existing := &models.Transfer{ID: 12, ClientID: 7, Status: models.StatusRequested, StartLocation: "Airport"}
	repo.On("Get", ctx, 12).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)

	// Jumping straight past confirmed sends nothing; only landing on
	// confirmed does.
	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	updated, err := svc.Update(ctx, admin, 12, &models.UpdateTransferRequest{Status: strPtr(models.StatusCompleted)})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferService_EmailFailureDoesNotFailUpdate(t *testing.T) {
	repo := new(MockTransferStore)
	users := new(MockUserStore)
	provider := new(MockEmailProvider)
	svc := newTransferService(repo, users, new(MockVehicleStore), new(MockPriceLookup), provider)
	ctx := context.Background()

	existing := &models.Transfer{ID: 12, ClientID: 7, Status: models.StatusRequested, StartLocation: "Airport"}
	repo.On("Get", ctx, 12).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)
	users.On("Get", ctx, 7).Return(&models.User{ID: 7, Name: "Acme", Email: "ops@acme.test"}, nil)
	provider.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	updated, err := svc.Update(ctx, admin, 12, &models.UpdateTransferRequest{Status: strPtr(models.StatusConfirmed)})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
}

func TestTransferService_UpdateNeverReprices(t *testing.T) {
	repo := new(MockTransferStore)
	prices := new(MockPriceLookup)
	svc := newTransferService(repo, new(MockUserStore), new(MockVehicleStore), prices, new(MockEmailProvider))
	ctx := context.Background()

	existing := &models.Transfer{
		ID:           12,
		ClientID:     7,
		Status:       models.StatusRequested,
		ServiceValue: floatPtr(55),
		ServiceCost:  floatPtr(20),
	}
	repo.On("Get", ctx, 12).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Transfer")).Return(nil)

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	updated, err := svc.Update(ctx, admin, 12, &models.UpdateTransferRequest{VehicleID: intPtr(99)})
	require.NoError(t, err)

	assert.Equal(t, 55.0, *updated.ServiceValue)
	assert.Equal(t, 20.0, *updated.ServiceCost)
	prices.AssertNotCalled(t, "GetByClassAndType")
}

func TestTransferService_GetMissing(t *testing.T) {
	repo := new(MockTransferStore)
	svc := newTransferService(repo, new(MockUserStore), new(MockVehicleStore), new(MockPriceLookup), new(MockEmailProvider))
	ctx := context.Background()

	repo.On("Get", ctx, 404).Return(nil, pgx.ErrNoRows)

	_, err := svc.Get(ctx, &models.User{ID: 1, Role: models.RoleAdmin}, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
