package services

import (
	"context"
	"testing"
	"time"

	"transfer-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestService_Create(t *testing.T) {
	repo := new(MockServiceRequestStore)
	svc := NewRequestService(repo, new(MockUserStore))
	ctx := context.Background()

	actor := &models.User{ID: 3, Role: models.RoleEndUser}
	repo.On("Create", ctx, mock.AnythingOfType("*models.ServiceRequest")).Return(nil)

	sr, err := svc.Create(ctx, actor, &models.CreateServiceRequestRequest{
		StartLocation:     "Office",
		EndLocation:       "Airport",
		RequestedDatetime: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, sr.RequesterID)
	assert.Equal(t, models.RequestPending, sr.Status)
	assert.False(t, sr.ClientApproved)
	assert.False(t, sr.AdminApproved)
}

func TestRequestService_CreateValidation(t *testing.T) {
	svc := NewRequestService(new(MockServiceRequestStore), new(MockUserStore))
	actor := &models.User{ID: 3, Role: models.RoleEndUser}

	_, err := svc.Create(context.Background(), actor, &models.CreateServiceRequestRequest{
		StartLocation: "Office",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequestService_AdminApproval(t *testing.T) {
	repo := new(MockServiceRequestStore)
	svc := NewRequestService(repo, new(MockUserStore))
	ctx := context.Background()

	repo.On("Get", ctx, 5).Return(&models.ServiceRequest{ID: 5, RequesterID: 3, Status: models.RequestPending}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.ServiceRequest")).Return(nil)

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	sr, err := svc.Approve(ctx, admin, 5)
	require.NoError(t, err)

	assert.True(t, sr.AdminApproved)
	assert.False(t, sr.ClientApproved)
	// One signature alone never promotes the status
	assert.Equal(t, models.RequestPending, sr.Status)
}

func TestRequestService_DualApprovalPromotes(t *testing.T) {
	repo := new(MockServiceRequestStore)
	users := new(MockUserStore)
	svc := NewRequestService(repo, users)
	ctx := context.Background()

	repo.On("Get", ctx, 5).Return(&models.ServiceRequest{
		ID:            5,
		RequesterID:   3,
		Status:        models.RequestPending,
		AdminApproved: true,
	}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.ServiceRequest")).Return(nil)
	users.On("Get", ctx, 3).Return(&models.User{ID: 3, Role: models.RoleEndUser, AssociatedClientID: intPtr(7)}, nil)

	client := &models.User{ID: 7, Role: models.RoleClient}
	sr, err := svc.Approve(ctx, client, 5)
	require.NoError(t, err)

	assert.True(t, sr.ClientApproved)
	assert.True(t, sr.AdminApproved)
	assert.Equal(t, models.RequestApproved, sr.Status)
}

func TestRequestService_UnassociatedClientDenied(t *testing.T) {
	repo := new(MockServiceRequestStore)
	users := new(MockUserStore)
	svc := NewRequestService(repo, users)
	ctx := context.Background()

	repo.On("Get", ctx, 5).Return(&models.ServiceRequest{ID: 5, RequesterID: 3, Status: models.RequestPending}, nil)
	users.On("Get", ctx, 3).Return(&models.User{ID: 3, Role: models.RoleEndUser, AssociatedClientID: intPtr(7)}, nil)

	otherClient := &models.User{ID: 8, Role: models.RoleClient}
	_, err := svc.Approve(ctx, otherClient, 5)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestService_OperatorDenied(t *testing.T) {
	repo := new(MockServiceRequestStore)
	svc := NewRequestService(repo, new(MockUserStore))
	ctx := context.Background()

	repo.On("Get", ctx, 5).Return(&models.ServiceRequest{ID: 5, RequesterID: 3, Status: models.RequestPending}, nil)

	operator := &models.User{ID: 9, Role: models.RoleOperator}
	_, err := svc.Approve(ctx, operator, 5)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestService_ApproveIsIdempotentPerActor(t *testing.T) {
	repo := new(MockServiceRequestStore)
	svc := NewRequestService(repo, new(MockUserStore))
	ctx := context.Background()

	repo.On("Get", ctx, 5).Return(&models.ServiceRequest{
		ID:            5,
		RequesterID:   3,
		Status:        models.RequestPending,
		AdminApproved: true,
	}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.ServiceRequest")).Return(nil)

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	sr, err := svc.Approve(ctx, admin, 5)
	require.NoError(t, err)

	assert.True(t, sr.AdminApproved)
	assert.Equal(t, models.RequestPending, sr.Status)
}

func TestRequestService_VisibilityScoping(t *testing.T) {
	repo := new(MockServiceRequestStore)
	svc := NewRequestService(repo, new(MockUserStore))
	ctx := context.Background()

	repo.On("Get", ctx, 5).Return(&models.ServiceRequest{ID: 5, RequesterID: 3}, nil)

	// Another user's request behaves as missing
	stranger := &models.User{ID: 4, Role: models.RoleEndUser}
	_, err := svc.Get(ctx, stranger, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	// The owner and admins see it
	owner := &models.User{ID: 3, Role: models.RoleEndUser}
	sr, err := svc.Get(ctx, owner, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, sr.ID)

	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	_, err = svc.Get(ctx, admin, 5)
	assert.NoError(t, err)
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, models.RequestApproved, deriveStatus(true, true, models.RequestPending))
	assert.Equal(t, models.RequestPending, deriveStatus(true, false, models.RequestPending))
	assert.Equal(t, models.RequestPending, deriveStatus(false, true, models.RequestPending))
	assert.Equal(t, models.RequestPending, deriveStatus(false, false, models.RequestPending))
	// Already-approved requests stay approved
	assert.Equal(t, models.RequestApproved, deriveStatus(true, true, models.RequestApproved))
}
