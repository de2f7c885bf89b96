package models

import "time"

// Vehicle service classes
const (
	ClassCar     = "car"
	ClassVan     = "van"
	ClassMinibus = "minibus"
	ClassBus     = "bus"
)

// ValidServiceClass reports whether class is a known vehicle class
func ValidServiceClass(class string) bool {
	switch class {
	case ClassCar, ClassVan, ClassMinibus, ClassBus:
		return true
	}
	return false
}

type Vehicle struct {
	ID           int       `json:"id"`
	ServiceClass string    `json:"service_class"`
	LicensePlate string    `json:"license_plate"`
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
