package repositories

import (
	"context"
	"time"

	"transfer-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transferColumns = `id, client_id, end_user_id, operator_id, vehicle_id, service_type, status,
		 start_location, end_location, scheduled_start_time, scheduled_duration_hours,
		 actual_start_time, actual_end_time, notes, deviations, service_value, service_cost,
		 created_at, updated_at`

type TransferRepository struct {
	DB *pgxpool.Pool
}

func NewTransferRepository(db *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{DB: db}
}

func (r *TransferRepository) Create(ctx context.Context, t *models.Transfer) error {
	if t.Status == "" {
		t.Status = models.StatusRequested
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO transfers(client_id, end_user_id, operator_id, vehicle_id, service_type, status,
		   start_location, end_location, scheduled_start_time, scheduled_duration_hours,
		   actual_start_time, actual_end_time, notes, deviations, service_value, service_cost)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
         RETURNING id, created_at, updated_at`,
		t.ClientID, t.EndUserID, t.OperatorID, t.VehicleID, t.ServiceType, t.Status,
		t.StartLocation, t.EndLocation, t.ScheduledStartTime, t.ScheduledDurationHours,
		t.ActualStartTime, t.ActualEndTime, t.Notes, t.Deviations, t.ServiceValue, t.ServiceCost,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TransferRepository) Get(ctx context.Context, id int) (*models.Transfer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE id=$1`, id)
	return scanTransfer(row)
}

// List returns all transfers
func (r *TransferRepository) List(ctx context.Context) ([]*models.Transfer, error) {
	return r.query(ctx, `SELECT `+transferColumns+` FROM transfers ORDER BY scheduled_start_time DESC`)
}

// ListByClient returns the transfers owned by a client
func (r *TransferRepository) ListByClient(ctx context.Context, clientID int) ([]*models.Transfer, error) {
	return r.query(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE client_id=$1 ORDER BY scheduled_start_time DESC`, clientID)
}

// ListByOperator returns the transfers assigned to an operator
func (r *TransferRepository) ListByOperator(ctx context.Context, operatorID int) ([]*models.Transfer, error) {
	return r.query(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE operator_id=$1 ORDER BY scheduled_start_time DESC`, operatorID)
}

// ListCompletedOn returns completed transfers whose actual end time
// falls within [dayStart, dayEnd). Used by daily report generation.
func (r *TransferRepository) ListCompletedOn(ctx context.Context, dayStart, dayEnd time.Time) ([]*models.Transfer, error) {
	return r.query(ctx,
		`SELECT `+transferColumns+` FROM transfers
         WHERE status=$1 AND actual_end_time >= $2 AND actual_end_time < $3
         ORDER BY actual_end_time`,
		models.StatusCompleted, dayStart, dayEnd)
}

func (r *TransferRepository) Update(ctx context.Context, t *models.Transfer) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE transfers SET end_user_id=$1, operator_id=$2, vehicle_id=$3, service_type=$4, status=$5,
		   start_location=$6, end_location=$7, scheduled_start_time=$8, scheduled_duration_hours=$9,
		   actual_start_time=$10, actual_end_time=$11, notes=$12, deviations=$13,
		   service_value=$14, service_cost=$15, updated_at=CURRENT_TIMESTAMP
         WHERE id=$16`,
		t.EndUserID, t.OperatorID, t.VehicleID, t.ServiceType, t.Status,
		t.StartLocation, t.EndLocation, t.ScheduledStartTime, t.ScheduledDurationHours,
		t.ActualStartTime, t.ActualEndTime, t.Notes, t.Deviations,
		t.ServiceValue, t.ServiceCost, t.ID)
	return err
}

func (r *TransferRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM transfers WHERE id=$1`, id)
	return err
}

func (r *TransferRepository) query(ctx context.Context, sql string, args ...any) ([]*models.Transfer, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*models.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

func scanTransfer(row pgx.Row) (*models.Transfer, error) {
	var t models.Transfer
	err := row.Scan(&t.ID, &t.ClientID, &t.EndUserID, &t.OperatorID, &t.VehicleID,
		&t.ServiceType, &t.Status, &t.StartLocation, &t.EndLocation,
		&t.ScheduledStartTime, &t.ScheduledDurationHours,
		&t.ActualStartTime, &t.ActualEndTime, &t.Notes, &t.Deviations,
		&t.ServiceValue, &t.ServiceCost, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
