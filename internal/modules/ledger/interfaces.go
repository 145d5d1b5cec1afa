package ledger

import (
	"context"

	"studioops/internal/domain"
	"studioops/internal/modules/feed"
	"studioops/internal/repository"
)

// Store runs a group of record mutations as one atomic write set.
type Store interface {
	Atomically(ctx context.Context, fn func(ops *repository.LedgerOps) error) error
}

type BookingReader interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Booking, error)
}

type AccountLister interface {
	List(ctx context.Context, tenantID int64) ([]domain.Account, error)
}

type TransactionLister interface {
	List(ctx context.Context, tenantID, accountID, bookingID int64, limit, offset int) ([]domain.Transaction, error)
}

// Health gates operations that must never partially apply.
type Health interface {
	Ready() bool
}

type Notifier interface {
	Publish(tenantID int64, e feed.Event)
}
