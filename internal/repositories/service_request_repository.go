package repositories

import (
	"context"

	"transfer-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRequestRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRequestRepository(db *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{DB: db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, sr *models.ServiceRequest) error {
	if sr.Status == "" {
		sr.Status = models.RequestPending
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO service_requests(requester_id, start_location, end_location, requested_datetime, status, client_approved, admin_approved)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		sr.RequesterID, sr.StartLocation, sr.EndLocation, sr.RequestedDatetime,
		sr.Status, sr.ClientApproved, sr.AdminApproved,
	).Scan(&sr.ID, &sr.CreatedAt, &sr.UpdatedAt)
}

func (r *ServiceRequestRepository) Get(ctx context.Context, id int) (*models.ServiceRequest, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, requester_id, start_location, end_location, requested_datetime, status, client_approved, admin_approved, created_at, updated_at
         FROM service_requests WHERE id=$1`, id)
	return scanServiceRequest(row)
}

// List returns all service requests
func (r *ServiceRequestRepository) List(ctx context.Context) ([]*models.ServiceRequest, error) {
	return r.query(ctx,
		`SELECT id, requester_id, start_location, end_location, requested_datetime, status, client_approved, admin_approved, created_at, updated_at
         FROM service_requests ORDER BY requested_datetime DESC`)
}

// ListByRequester returns the requests created by one user
func (r *ServiceRequestRepository) ListByRequester(ctx context.Context, requesterID int) ([]*models.ServiceRequest, error) {
	return r.query(ctx,
		`SELECT id, requester_id, start_location, end_location, requested_datetime, status, client_approved, admin_approved, created_at, updated_at
         FROM service_requests WHERE requester_id=$1 ORDER BY requested_datetime DESC`, requesterID)
}

func (r *ServiceRequestRepository) Update(ctx context.Context, sr *models.ServiceRequest) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE service_requests SET start_location=$1, end_location=$2, requested_datetime=$3, status=$4, client_approved=$5, admin_approved=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		sr.StartLocation, sr.EndLocation, sr.RequestedDatetime, sr.Status,
		sr.ClientApproved, sr.AdminApproved, sr.ID)
	return err
}

func (r *ServiceRequestRepository) query(ctx context.Context, sql string, args ...any) ([]*models.ServiceRequest, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.ServiceRequest
	for rows.Next() {
		sr, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, sr)
	}
	return requests, rows.Err()
}

func scanServiceRequest(row pgx.Row) (*models.ServiceRequest, error) {
	var sr models.ServiceRequest
	err := row.Scan(&sr.ID, &sr.RequesterID, &sr.StartLocation, &sr.EndLocation,
		&sr.RequestedDatetime, &sr.Status, &sr.ClientApproved, &sr.AdminApproved,
		&sr.CreatedAt, &sr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sr, nil
}
