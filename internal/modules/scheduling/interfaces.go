package scheduling

import (
	"context"
	"time"

	"studioops/internal/domain"
	"studioops/internal/modules/ledger"
)

type BookingRepo interface {
	ListByDate(ctx context.Context, tenantID int64, date time.Time) ([]domain.Booking, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Booking, error)
}

type StaffRepo interface {
	List(ctx context.Context, tenantID int64) ([]domain.Staff, error)
}

type ClientRepo interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Client, error)
}

type PackageRepo interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.PackageTemplate, error)
}

// BookingCreator is the ledger engine's intake entry point: the booking and
// its optional deposit commit as one atomic set.
type BookingCreator interface {
	CreateBooking(ctx context.Context, b *domain.Booking, dep *ledger.Deposit) (*domain.Booking, error)
}
