package production

import (
	"context"

	"studioops/internal/domain"
	"studioops/internal/modules/feed"
)

type BookingRepo interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Booking, error)
	ListActive(ctx context.Context, tenantID int64) ([]domain.Booking, error)
	UpdateProduction(ctx context.Context, b *domain.Booking) error
}

type Notifier interface {
	Publish(tenantID int64, e feed.Event)
}
