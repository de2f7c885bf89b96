package models

import "time"

// ServiceRequest statuses. Approved is derived from the two sign-off
// flags; no workflow path ever writes Rejected (the enum value exists
// for manual/administrative writes only).
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// ServiceRequest is a pre-booking ask requiring sign-off from both an
// admin and the requester's associated client before it counts as
// approved.
type ServiceRequest struct {
	ID                int       `json:"id"`
	RequesterID       int       `json:"requester"`
	StartLocation     string    `json:"start_location"`
	EndLocation       string    `json:"end_location"`
	RequestedDatetime time.Time `json:"requested_datetime"`
	Status            string    `json:"status"`
	ClientApproved    bool      `json:"client_approved"`
	AdminApproved     bool      `json:"admin_approved"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateServiceRequestRequest represents the request body for a new
// service request; the requester is always the authenticated user.
type CreateServiceRequestRequest struct {
	StartLocation     string    `json:"start_location"`
	EndLocation       string    `json:"end_location"`
	RequestedDatetime time.Time `json:"requested_datetime"`
}
