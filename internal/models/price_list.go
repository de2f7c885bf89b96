package models

import "time"

// Service types a transfer can be booked as
const (
	ServicePointToPoint   = "point_to_point"
	ServiceHourlyDisposal = "hourly_disposal"
)

// ValidServiceType reports whether serviceType is a known service type
func ValidServiceType(serviceType string) bool {
	return serviceType == ServicePointToPoint || serviceType == ServiceHourlyDisposal
}

// PriceList is a rate card row keyed by (service_class, service_type).
// The pair is unique at the database level so rate resolution is
// deterministic.
type PriceList struct {
	ID           int       `json:"id"`
	ServiceClass string    `json:"service_class"`
	ServiceType  string    `json:"service_type"`
	PricePerKM   *float64  `json:"price_per_km"`
	PricePerHour *float64  `json:"price_per_hour"`
	OperatorRate float64   `json:"operator_rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
