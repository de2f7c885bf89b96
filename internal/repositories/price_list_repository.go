package repositories

import (
	"context"
	"errors"

	"transfer-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows is re-exported so callers do not import pgx directly
var ErrNoRows = pgx.ErrNoRows

// IsNoRows reports whether err means the query matched nothing
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type PriceListRepository struct {
	DB *pgxpool.Pool
}

func NewPriceListRepository(db *pgxpool.Pool) *PriceListRepository {
	return &PriceListRepository{DB: db}
}

func (r *PriceListRepository) Create(ctx context.Context, p *models.PriceList) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO price_lists(service_class, service_type, price_per_km, price_per_hour, operator_rate)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		p.ServiceClass, p.ServiceType, p.PricePerKM, p.PricePerHour, p.OperatorRate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PriceListRepository) Get(ctx context.Context, id int) (*models.PriceList, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, service_class, service_type, price_per_km, price_per_hour, operator_rate, created_at, updated_at
         FROM price_lists WHERE id=$1`, id)
	return scanPriceList(row)
}

// GetByClassAndType looks up the single rate card row for a
// (service_class, service_type) pair. The pair carries a unique
// constraint, so at most one row can match.
func (r *PriceListRepository) GetByClassAndType(ctx context.Context, serviceClass, serviceType string) (*models.PriceList, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, service_class, service_type, price_per_km, price_per_hour, operator_rate, created_at, updated_at
         FROM price_lists WHERE service_class=$1 AND service_type=$2`, serviceClass, serviceType)
	return scanPriceList(row)
}

func (r *PriceListRepository) List(ctx context.Context) ([]*models.PriceList, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, service_class, service_type, price_per_km, price_per_hour, operator_rate, created_at, updated_at
         FROM price_lists ORDER BY service_class, service_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []*models.PriceList
	for rows.Next() {
		var p models.PriceList
		err := rows.Scan(&p.ID, &p.ServiceClass, &p.ServiceType, &p.PricePerKM, &p.PricePerHour,
			&p.OperatorRate, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		prices = append(prices, &p)
	}
	return prices, rows.Err()
}

func (r *PriceListRepository) Update(ctx context.Context, p *models.PriceList) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE price_lists SET service_class=$1, service_type=$2, price_per_km=$3, price_per_hour=$4, operator_rate=$5, updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		p.ServiceClass, p.ServiceType, p.PricePerKM, p.PricePerHour, p.OperatorRate, p.ID)
	return err
}

func (r *PriceListRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM price_lists WHERE id=$1`, id)
	return err
}

func scanPriceList(row pgx.Row) (*models.PriceList, error) {
	var p models.PriceList
	err := row.Scan(&p.ID, &p.ServiceClass, &p.ServiceType, &p.PricePerKM, &p.PricePerHour,
		&p.OperatorRate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
