package services

import (
	"context"
	"time"

	"transfer-backend/internal/models"
)

// Narrow views over the repository layer. Services depend on these
// rather than the concrete pgx repositories so the business rules can
// be exercised without a database.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int) error
}

type VehicleStore interface {
	Create(ctx context.Context, v *models.Vehicle) error
	Get(ctx context.Context, id int) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)
	Update(ctx context.Context, v *models.Vehicle) error
	Delete(ctx context.Context, id int) error
}

type PriceListStore interface {
	PriceLookup
	Create(ctx context.Context, p *models.PriceList) error
	Get(ctx context.Context, id int) (*models.PriceList, error)
	List(ctx context.Context) ([]*models.PriceList, error)
	Update(ctx context.Context, p *models.PriceList) error
	Delete(ctx context.Context, id int) error
}

type TransferStore interface {
	Create(ctx context.Context, t *models.Transfer) error
	Get(ctx context.Context, id int) (*models.Transfer, error)
	List(ctx context.Context) ([]*models.Transfer, error)
	ListByClient(ctx context.Context, clientID int) ([]*models.Transfer, error)
	ListByOperator(ctx context.Context, operatorID int) ([]*models.Transfer, error)
	ListCompletedOn(ctx context.Context, dayStart, dayEnd time.Time) ([]*models.Transfer, error)
	Update(ctx context.Context, t *models.Transfer) error
	Delete(ctx context.Context, id int) error
}

type ServiceRequestStore interface {
	Create(ctx context.Context, sr *models.ServiceRequest) error
	Get(ctx context.Context, id int) (*models.ServiceRequest, error)
	List(ctx context.Context) ([]*models.ServiceRequest, error)
	ListByRequester(ctx context.Context, requesterID int) ([]*models.ServiceRequest, error)
	Update(ctx context.Context, sr *models.ServiceRequest) error
}

type DailyReportStore interface {
	Insert(ctx context.Context, report *models.DailyReport) (bool, error)
	Get(ctx context.Context, id int) (*models.DailyReport, error)
	GetByDate(ctx context.Context, date time.Time) (*models.DailyReport, error)
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
	List(ctx context.Context) ([]*models.DailyReport, error)
}
