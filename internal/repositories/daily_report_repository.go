package repositories

import (
	"context"
	"time"

	"transfer-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DailyReportRepository struct {
	DB *pgxpool.Pool
}

func NewDailyReportRepository(db *pgxpool.Pool) *DailyReportRepository {
	return &DailyReportRepository{DB: db}
}

// Insert creates a report row for the date unless one already exists.
// The UNIQUE constraint on report_date makes the race between two
// generators harmless: the loser gets inserted=false and reads the
// winner's row instead.
func (r *DailyReportRepository) Insert(ctx context.Context, report *models.DailyReport) (bool, error) {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO daily_reports(report_date, total_value, total_cost)
         VALUES($1, $2, $3)
         ON CONFLICT (report_date) DO NOTHING
         RETURNING id, created_at`,
		report.ReportDate, report.TotalValue, report.TotalCost,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		if IsNoRows(err) {
			return false, nil // conflict: a report for this date already exists
		}
		return false, err
	}

	for _, transferID := range report.TransferIDs {
		_, err := r.DB.Exec(ctx,
			`INSERT INTO daily_report_transfers(report_id, transfer_id) VALUES($1, $2)
             ON CONFLICT DO NOTHING`,
			report.ID, transferID)
		if err != nil {
			return true, err
		}
	}
	return true, nil
}

func (r *DailyReportRepository) Get(ctx context.Context, id int) (*models.DailyReport, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, report_date, total_value, total_cost, created_at
         FROM daily_reports WHERE id=$1`, id)
	return r.scanWithTransfers(ctx, row)
}

func (r *DailyReportRepository) GetByDate(ctx context.Context, date time.Time) (*models.DailyReport, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, report_date, total_value, total_cost, created_at
         FROM daily_reports WHERE report_date=$1`, date)
	return r.scanWithTransfers(ctx, row)
}

// ExistsForDate reports whether a report has already been generated
// for the date
func (r *DailyReportRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM daily_reports WHERE report_date=$1)`, date).Scan(&exists)
	return exists, err
}

func (r *DailyReportRepository) List(ctx context.Context) ([]*models.DailyReport, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, report_date, total_value, total_cost, created_at
         FROM daily_reports ORDER BY report_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.DailyReport
	for rows.Next() {
		var report models.DailyReport
		if err := rows.Scan(&report.ID, &report.ReportDate, &report.TotalValue, &report.TotalCost, &report.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, report := range reports {
		ids, err := r.transferIDs(ctx, report.ID)
		if err != nil {
			return nil, err
		}
		report.TransferIDs = ids
	}
	return reports, nil
}

func (r *DailyReportRepository) scanWithTransfers(ctx context.Context, row pgx.Row) (*models.DailyReport, error) {
	var report models.DailyReport
	err := row.Scan(&report.ID, &report.ReportDate, &report.TotalValue, &report.TotalCost, &report.CreatedAt)
	if err != nil {
		return nil, err
	}
	ids, err := r.transferIDs(ctx, report.ID)
	if err != nil {
		return nil, err
	}
	report.TransferIDs = ids
	return &report, nil
}

func (r *DailyReportRepository) transferIDs(ctx context.Context, reportID int) ([]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT transfer_id FROM daily_report_transfers WHERE report_id=$1 ORDER BY transfer_id`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
