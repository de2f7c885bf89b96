package models

import "time"

// DailyReport is an immutable financial rollup of the transfers
// completed on a given date. At most one report exists per date.
type DailyReport struct {
	ID          int       `json:"id"`
	ReportDate  time.Time `json:"date"`
	TotalValue  float64   `json:"total_value"`
	TotalCost   float64   `json:"total_cost"`
	TransferIDs []int     `json:"completed_transfers"`
	CreatedAt   time.Time `json:"created_at"`
}

// GenerateReportRequest represents the request body for POST /reports
type GenerateReportRequest struct {
	Date string `json:"date"` // YYYY-MM-DD; defaults to yesterday when empty
}
