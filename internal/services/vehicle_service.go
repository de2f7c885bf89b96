package services

import (
	"context"
	"fmt"

	"transfer-backend/internal/models"
	"transfer-backend/internal/repositories"
)

type VehicleService struct {
	Repo VehicleStore
}

func NewVehicleService(repo VehicleStore) *VehicleService {
	return &VehicleService{Repo: repo}
}

func (s *VehicleService) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	if !models.ValidServiceClass(v.ServiceClass) {
		return fmt.Errorf("%w: unknown service class %q", ErrValidation, v.ServiceClass)
	}
	if v.LicensePlate == "" {
		return fmt.Errorf("%w: license_plate is required", ErrValidation)
	}
	if v.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return s.Repo.Create(ctx, v)
}

func (s *VehicleService) GetVehicle(ctx context.Context, id int) (*models.Vehicle, error) {
	v, err := s.Repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: vehicle %d", ErrNotFound, id)
		}
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.Repo.List(ctx)
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, v *models.Vehicle) error {
	if !models.ValidServiceClass(v.ServiceClass) {
		return fmt.Errorf("%w: unknown service class %q", ErrValidation, v.ServiceClass)
	}
	if v.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return s.Repo.Update(ctx, v)
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
