package models

import "time"

// Transfer statuses. There is no enforced transition graph: any status
// may be written directly, the update path only records the prior
// value to detect the confirmation transition.
const (
	StatusRequested  = "requested"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidTransferStatus reports whether status is a known transfer status
func ValidTransferStatus(status string) bool {
	switch status {
	case StatusRequested, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Transfer is a single booked trip. ServiceValue (client price) and
// ServiceCost (operator compensation) are computed once at creation
// if a vehicle is attached and are never recomputed afterwards, even
// when the vehicle or rate card changes.
type Transfer struct {
	ID         int  `json:"id"`
	ClientID   int  `json:"client"`
	EndUserID  *int `json:"end_user"`
	OperatorID *int `json:"operator"`
	VehicleID  *int `json:"vehicle"`

	ServiceType string `json:"service_type"`
	Status      string `json:"status"`

	StartLocation string  `json:"start_location"`
	EndLocation   *string `json:"end_location"`

	ScheduledStartTime     time.Time `json:"scheduled_start_time"`
	ScheduledDurationHours *float64  `json:"scheduled_duration_hours"`

	ActualStartTime *time.Time `json:"actual_start_time"`
	ActualEndTime   *time.Time `json:"actual_end_time"`

	Notes      string `json:"notes"`
	Deviations string `json:"deviations"`

	ServiceValue *float64 `json:"service_value"`
	ServiceCost  *float64 `json:"service_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTransferRequest represents the request body for booking a transfer
type CreateTransferRequest struct {
	ClientID               *int      `json:"client"`
	EndUserID              *int      `json:"end_user"`
	OperatorID             *int      `json:"operator"`
	VehicleID              *int      `json:"vehicle"`
	ServiceType            string    `json:"service_type"`
	StartLocation          string    `json:"start_location"`
	EndLocation            *string   `json:"end_location"`
	ScheduledStartTime     time.Time `json:"scheduled_start_time"`
	ScheduledDurationHours *float64  `json:"scheduled_duration_hours"`
	Notes                  string    `json:"notes"`
}

// UpdateTransferRequest represents the request body for updating a transfer.
// Pointer fields are applied only when present.
type UpdateTransferRequest struct {
	EndUserID              *int       `json:"end_user"`
	OperatorID             *int       `json:"operator"`
	VehicleID              *int       `json:"vehicle"`
	Status                 *string    `json:"status"`
	StartLocation          *string    `json:"start_location"`
	EndLocation            *string    `json:"end_location"`
	ScheduledStartTime     *time.Time `json:"scheduled_start_time"`
	ScheduledDurationHours *float64   `json:"scheduled_duration_hours"`
	ActualStartTime        *time.Time `json:"actual_start_time"`
	ActualEndTime          *time.Time `json:"actual_end_time"`
	Notes                  *string    `json:"notes"`
	Deviations             *string    `json:"deviations"`
}
