package repositories

import (
	"context"

	"transfer-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	DB *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{DB: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO vehicles(service_class, license_plate, capacity)
         VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		v.ServiceClass, v.LicensePlate, v.Capacity,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func (r *VehicleRepository) Get(ctx context.Context, id int) (*models.Vehicle, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, service_class, license_plate, capacity, created_at, updated_at
         FROM vehicles WHERE id=$1`, id)

	var v models.Vehicle
	err := row.Scan(&v.ID, &v.ServiceClass, &v.LicensePlate, &v.Capacity, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, service_class, license_plate, capacity, created_at, updated_at
         FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.ServiceClass, &v.LicensePlate, &v.Capacity, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}

// Update updates the mutable attributes of a vehicle. The license
// plate is part of the vehicle's identity and is updatable only
// through delete/recreate.
func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE vehicles SET service_class=$1, capacity=$2, updated_at=CURRENT_TIMESTAMP
         WHERE id=$3`,
		v.ServiceClass, v.Capacity, v.ID)
	return err
}

func (r *VehicleRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	return err
}
