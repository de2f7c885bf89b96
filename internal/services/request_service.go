package services

import (
	"context"
	"fmt"

	"transfer-backend/internal/models"
	"transfer-backend/internal/repositories"
)

type RequestService struct {
	Repo  ServiceRequestStore
	Users UserStore
}

func NewRequestService(repo ServiceRequestStore, users UserStore) *RequestService {
	return &RequestService{Repo: repo, Users: users}
}

// Create files a service request on behalf of the authenticated actor
func (s *RequestService) Create(ctx context.Context, actor *models.User, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	if req.StartLocation == "" || req.EndLocation == "" {
		return nil, fmt.Errorf("%w: start_location and end_location are required", ErrValidation)
	}
	if req.RequestedDatetime.IsZero() {
		return nil, fmt.Errorf("%w: requested_datetime is required", ErrValidation)
	}

	sr := &models.ServiceRequest{
		RequesterID:       actor.ID,
		StartLocation:     req.StartLocation,
		EndLocation:       req.EndLocation,
		RequestedDatetime: req.RequestedDatetime,
		Status:            models.RequestPending,
	}
	if err := s.Repo.Create(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// Get returns a request visible to the actor
func (s *RequestService) Get(ctx context.Context, actor *models.User, id int) (*models.ServiceRequest, error) {
	sr, err := s.Repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: service request %d", ErrNotFound, id)
		}
		return nil, err
	}
	if actor.Role != models.RoleAdmin && sr.RequesterID != actor.ID {
		return nil, fmt.Errorf("%w: service request %d", ErrNotFound, id)
	}
	return sr, nil
}

// List returns all requests for admins, otherwise the actor's own
func (s *RequestService) List(ctx context.Context, actor *models.User) ([]*models.ServiceRequest, error) {
	if actor.Role == models.RoleAdmin {
		return s.Repo.List(ctx)
	}
	return s.Repo.ListByRequester(ctx, actor.ID)
}

// Approve records one side of the dual sign-off. Admins set the admin
// flag; the client associated with the requester sets the client
// flag; anyone else is rejected without touching state. The overall
// status is rederived from the flags after every approval, and no
// path in this workflow ever writes Rejected. Approving twice with
// the same eligible actor is a no-op after the first call.
func (s *RequestService) Approve(ctx context.Context, actor *models.User, id int) (*models.ServiceRequest, error) {
	sr, err := s.Repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: service request %d", ErrNotFound, id)
		}
		return nil, err
	}

	switch {
	case actor.Role == models.RoleAdmin:
		sr.AdminApproved = true
	case actor.Role == models.RoleClient && s.isAssociatedClient(ctx, sr.RequesterID, actor.ID):
		sr.ClientApproved = true
	default:
		return nil, ErrPermissionDenied
	}

	sr.Status = deriveStatus(sr.ClientApproved, sr.AdminApproved, sr.Status)

	if err := s.Repo.Update(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// deriveStatus computes the overall status from the two sign-off
// flags. It only ever promotes to approved; rejected would have to be
// written through some channel outside this workflow.
func deriveStatus(clientApproved, adminApproved bool, current string) string {
	if clientApproved && adminApproved {
		return models.RequestApproved
	}
	return current
}

// isAssociatedClient reports whether clientID is the client company
// associated with the requester
func (s *RequestService) isAssociatedClient(ctx context.Context, requesterID, clientID int) bool {
	requester, err := s.Users.Get(ctx, requesterID)
	if err != nil {
		return false
	}
	return requester.AssociatedClientID != nil && *requester.AssociatedClientID == clientID
}
