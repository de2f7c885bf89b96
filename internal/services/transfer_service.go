package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"transfer-backend/internal/email"
	"transfer-backend/internal/metrics"
	"transfer-backend/internal/models"
	"transfer-backend/internal/repositories"
)

// notifyTimeout bounds the confirmation email call. A slow provider
// must never hold up the status update it was triggered by.
const notifyTimeout = 10 * time.Second

type TransferService struct {
	Repo     TransferStore
	Users    UserStore
	Vehicles VehicleStore
	Pricing  *PricingService
	Email    email.Provider
}

func NewTransferService(repo TransferStore, users UserStore, vehicles VehicleStore, pricing *PricingService, provider email.Provider) *TransferService {
	return &TransferService{
		Repo:     repo,
		Users:    users,
		Vehicles: vehicles,
		Pricing:  pricing,
		Email:    provider,
	}
}

// Create books a transfer. Clients book for themselves; admins may
// book on behalf of any client. Pricing is computed here, exactly
// once, and only when a vehicle is already attached.
func (s *TransferService) Create(ctx context.Context, actor *models.User, req *models.CreateTransferRequest) (*models.Transfer, error) {
	clientID, err := s.resolveClient(ctx, actor, req.ClientID)
	if err != nil {
		return nil, err
	}

	if !models.ValidServiceType(req.ServiceType) {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, req.ServiceType)
	}
	if req.StartLocation == "" {
		return nil, fmt.Errorf("%w: start_location is required", ErrValidation)
	}
	if req.ScheduledStartTime.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_start_time is required", ErrValidation)
	}
	if req.OperatorID != nil {
		if err := s.requireRole(ctx, *req.OperatorID, models.RoleOperator, "operator"); err != nil {
			return nil, err
		}
	}

	t := &models.Transfer{
		ClientID:               clientID,
		EndUserID:              req.EndUserID,
		OperatorID:             req.OperatorID,
		VehicleID:              req.VehicleID,
		ServiceType:            req.ServiceType,
		Status:                 models.StatusRequested,
		StartLocation:          req.StartLocation,
		EndLocation:            req.EndLocation,
		ScheduledStartTime:     req.ScheduledStartTime,
		ScheduledDurationHours: req.ScheduledDurationHours,
		Notes:                  req.Notes,
	}

	if t.VehicleID != nil {
		vehicle, err := s.Vehicles.Get(ctx, *t.VehicleID)
		if err != nil {
			if repositories.IsNoRows(err) {
				return nil, fmt.Errorf("%w: vehicle %d", ErrNotFound, *t.VehicleID)
			}
			return nil, err
		}
		if err := s.Pricing.Apply(ctx, t, vehicle); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	metrics.TransfersCreatedTotal.Inc()
	return t, nil
}

// Get returns a transfer if it is visible to the actor. Records
// outside the actor's scope behave as if they do not exist.
func (s *TransferService) Get(ctx context.Context, actor *models.User, id int) (*models.Transfer, error) {
	t, err := s.Repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: transfer %d", ErrNotFound, id)
		}
		return nil, err
	}
	if !visibleTo(actor, t) {
		return nil, fmt.Errorf("%w: transfer %d", ErrNotFound, id)
	}
	return t, nil
}

// List returns the transfers visible to the actor: admins see all,
// clients their own, operators their assignments, endusers nothing
// (they go through service requests instead).
func (s *TransferService) List(ctx context.Context, actor *models.User) ([]*models.Transfer, error) {
	switch actor.Role {
	case models.RoleAdmin:
		return s.Repo.List(ctx)
	case models.RoleClient:
		return s.Repo.ListByClient(ctx, actor.ID)
	case models.RoleOperator:
		return s.Repo.ListByOperator(ctx, actor.ID)
	}
	return []*models.Transfer{}, nil
}

// Update applies changes to a visible transfer. The persisted status
// is captured before the changes land; a transition into confirmed
// fires the notification email. Pricing is never recomputed here,
// even when the vehicle, service type or duration change.
func (s *TransferService) Update(ctx context.Context, actor *models.User, id int, req *models.UpdateTransferRequest) (*models.Transfer, error) {
	t, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	priorStatus := t.Status

	if req.Status != nil {
		if !models.ValidTransferStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		t.Status = *req.Status
	}
	if req.EndUserID != nil {
		t.EndUserID = req.EndUserID
	}
	if req.OperatorID != nil {
		if err := s.requireRole(ctx, *req.OperatorID, models.RoleOperator, "operator"); err != nil {
			return nil, err
		}
		t.OperatorID = req.OperatorID
	}
	if req.VehicleID != nil {
		t.VehicleID = req.VehicleID
	}
	if req.StartLocation != nil {
		t.StartLocation = *req.StartLocation
	}
	if req.EndLocation != nil {
		t.EndLocation = req.EndLocation
	}
	if req.ScheduledStartTime != nil {
		t.ScheduledStartTime = *req.ScheduledStartTime
	}
	if req.ScheduledDurationHours != nil {
		t.ScheduledDurationHours = req.ScheduledDurationHours
	}
	if req.ActualStartTime != nil {
		t.ActualStartTime = req.ActualStartTime
	}
	if req.ActualEndTime != nil {
		t.ActualEndTime = req.ActualEndTime
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	if req.Deviations != nil {
		t.Deviations = *req.Deviations
	}

	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}

	if t.Status == models.StatusConfirmed && priorStatus != models.StatusConfirmed {
		s.sendConfirmation(ctx, t)
	}
	return t, nil
}

// Delete removes a visible transfer
func (s *TransferService) Delete(ctx context.Context, actor *models.User, id int) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// sendConfirmation emails the owning client that the transfer is
// confirmed. One attempt, bounded by notifyTimeout; failure is logged
// and never propagated, the status update has already been persisted.
func (s *TransferService) sendConfirmation(ctx context.Context, t *models.Transfer) {
	client, err := s.Users.Get(ctx, t.ClientID)
	if err != nil {
		log.Printf("[Transfer] Cannot load client %d for confirmation email on transfer %d: %v", t.ClientID, t.ID, err)
		return
	}

	endLocation := ""
	if t.EndLocation != nil {
		endLocation = *t.EndLocation
	}
	subject := fmt.Sprintf("Transfer %d confirmed", t.ID)
	body := fmt.Sprintf("Hello %s,\n\nYour transfer from %s to %s has been confirmed.\n\nThank you.",
		client.Name, t.StartLocation, endLocation)

	done := make(chan error, 1)
	go func() {
		done <- s.Email.Send(client.Email, client.Name, subject, body, t.ID)
	}()

	select {
	case err := <-done:
		if err != nil {
			metrics.ConfirmationEmailsTotal.WithLabelValues("failed").Inc()
			log.Printf("[Transfer] Failed to send confirmation email for transfer %d: %v", t.ID, err)
			return
		}
		metrics.ConfirmationEmailsTotal.WithLabelValues("sent").Inc()
	case <-time.After(notifyTimeout):
		metrics.ConfirmationEmailsTotal.WithLabelValues("timeout").Inc()
		log.Printf("[Transfer] Confirmation email for transfer %d timed out after %s", t.ID, notifyTimeout)
	}
}

// resolveClient decides who owns the transfer being created
func (s *TransferService) resolveClient(ctx context.Context, actor *models.User, requested *int) (int, error) {
	switch actor.Role {
	case models.RoleClient:
		return actor.ID, nil
	case models.RoleAdmin:
		if requested == nil {
			return 0, fmt.Errorf("%w: client is required", ErrValidation)
		}
		if err := s.requireRole(ctx, *requested, models.RoleClient, "client"); err != nil {
			return 0, err
		}
		return *requested, nil
	}
	return 0, fmt.Errorf("%w: role %s cannot book transfers", ErrPermissionDenied, actor.Role)
}

// requireRole validates that the referenced user exists and holds the
// expected role
func (s *TransferService) requireRole(ctx context.Context, userID int, role, field string) error {
	u, err := s.Users.Get(ctx, userID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return fmt.Errorf("%w: %s %d", ErrNotFound, field, userID)
		}
		return err
	}
	if u.Role != role {
		return fmt.Errorf("%w: user %d is not a %s", ErrValidation, userID, role)
	}
	return nil
}

// visibleTo implements the role-scoped visibility rule for a single
// transfer
func visibleTo(actor *models.User, t *models.Transfer) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleClient:
		return t.ClientID == actor.ID
	case models.RoleOperator:
		return t.OperatorID != nil && *t.OperatorID == actor.ID
	}
	return false
}
