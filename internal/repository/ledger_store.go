package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"studioops/internal/domain"
)

// LedgerStore executes the ledger engine's atomic write sets. Every ledger
// operation runs inside Atomically: the grouped record changes become
// visible together or not at all.
type LedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// LedgerOps is the view of the store available inside an atomic write set.
type LedgerOps struct {
	tx *gorm.DB
}

func (s *LedgerStore) Atomically(ctx context.Context, fn func(ops *LedgerOps) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LedgerOps{tx: tx})
	})
}

func (o *LedgerOps) CreateBooking(b *domain.Booking) error {
	return o.tx.Create(b).Error
}

func (o *LedgerOps) GetBooking(tenantID, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := o.tx.Where("tenant_id = ?", tenantID).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// AddToPaid applies a signed delta to a booking's paid-to-date amount and
// records the derived payment state in the same write.
func (o *LedgerOps) AddToPaid(tenantID, id, delta int64, state domain.PaymentState) error {
	tx := o.tx.Model(&domain.Booking{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{
			"paid_amount":   gorm.Expr("paid_amount + ?", delta),
			"payment_state": state,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (o *LedgerOps) GetAccount(tenantID, id int64) (*domain.Account, error) {
	var a domain.Account
	tx := o.tx.Where("tenant_id = ?", tenantID).First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

// ApplyAccountDelta moves an account balance by a signed amount. The caller
// pairs every delta with exactly one Transaction record in the same write
// set; balances are never recomputed by summation.
func (o *LedgerOps) ApplyAccountDelta(tenantID, id, delta int64) error {
	tx := o.tx.Model(&domain.Account{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (o *LedgerOps) CreateTransaction(t *domain.Transaction) error {
	return o.tx.Create(t).Error
}

func (o *LedgerOps) GetTransaction(tenantID, id int64) (*domain.Transaction, error) {
	var t domain.Transaction
	tx := o.tx.Where("tenant_id = ?", tenantID).First(&t, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (o *LedgerOps) DeleteTransaction(tenantID, id int64) error {
	tx := o.tx.Where("tenant_id = ?", tenantID).Delete(&domain.Transaction{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsUniqueViolation reports whether err is a unique-constraint failure, on
// either the postgres or the sqlite path. Used to detect idempotency-key
// replays.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsNotFound normalizes the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
