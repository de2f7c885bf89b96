package repositories

import (
	"context"

	"transfer-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EmailLogRepository struct {
	DB *pgxpool.Pool
}

func NewEmailLogRepository(db *pgxpool.Pool) *EmailLogRepository {
	return &EmailLogRepository{DB: db}
}

func (r *EmailLogRepository) Create(ctx context.Context, l *models.EmailLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO email_logs(transfer_id, recipient, subject, status, error_message)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		l.TransferID, l.Recipient, l.Subject, l.Status, l.ErrorMessage,
	).Scan(&l.ID, &l.CreatedAt)
}

// ListByTransfer returns the notification attempts recorded for a transfer
func (r *EmailLogRepository) ListByTransfer(ctx context.Context, transferID int) ([]*models.EmailLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, transfer_id, recipient, subject, status, error_message, created_at
         FROM email_logs WHERE transfer_id=$1 ORDER BY created_at DESC`, transferID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.EmailLog
	for rows.Next() {
		var l models.EmailLog
		if err := rows.Scan(&l.ID, &l.TransferID, &l.Recipient, &l.Subject, &l.Status, &l.ErrorMessage, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
