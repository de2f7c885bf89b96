package models

import "time"

// Email log statuses
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog records every notification attempt. Failures never abort
// the operation that triggered them; this table is how they stay
// observable.
type EmailLog struct {
	ID           int       `json:"id"`
	TransferID   int       `json:"transfer_id"`
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
