package services

import (
	"context"
	"fmt"

	"transfer-backend/internal/models"
	"transfer-backend/internal/repositories"
)

// Point-to-point pricing uses a fixed base fee plus a per-km rate over
// a placeholder distance. The real distance would come from a routing
// API; the placeholder is deliberate and kept as-is.
const (
	baseFee               = 25.00
	placeholderDistanceKM = 15.0
)

// PriceLookup resolves the rate card row for a vehicle class and
// service type pair
type PriceLookup interface {
	GetByClassAndType(ctx context.Context, serviceClass, serviceType string) (*models.PriceList, error)
}

type PricingService struct {
	Prices PriceLookup
}

func NewPricingService(prices PriceLookup) *PricingService {
	return &PricingService{Prices: prices}
}

// Apply computes service_value and service_cost on the transfer from
// the rate card matching the vehicle's class and the transfer's
// service type. It runs only when a vehicle is attached and either
// value is still unset; once both are set they are never recomputed.
//
// A missing rate card row is a normal outcome, not an error: values
// default to zero unless they were already set.
func (s *PricingService) Apply(ctx context.Context, t *models.Transfer, vehicle *models.Vehicle) error {
	if vehicle == nil || (t.ServiceValue != nil && t.ServiceCost != nil) {
		return nil
	}

	priceInfo, err := s.Prices.GetByClassAndType(ctx, vehicle.ServiceClass, t.ServiceType)
	if err != nil {
		if repositories.IsNoRows(err) {
			zeroOut(&t.ServiceValue)
			zeroOut(&t.ServiceCost)
			return nil
		}
		return fmt.Errorf("price lookup: %w", err)
	}

	switch t.ServiceType {
	case models.ServiceHourlyDisposal:
		if t.ScheduledDurationHours != nil && priceInfo.PricePerHour != nil {
			value := *t.ScheduledDurationHours * *priceInfo.PricePerHour
			t.ServiceValue = &value
		}
	case models.ServicePointToPoint:
		if priceInfo.PricePerKM != nil {
			value := baseFee + *priceInfo.PricePerKM*placeholderDistanceKM
			t.ServiceValue = &value
		}
	}

	cost := priceInfo.OperatorRate
	t.ServiceCost = &cost
	return nil
}

// zeroOut sets *v to 0 only when it is still unset
func zeroOut(v **float64) {
	if *v == nil {
		zero := 0.0
		*v = &zero
	}
}
