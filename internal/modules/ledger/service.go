package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studioops/internal/domain"
	"studioops/internal/modules/feed"
	"studioops/internal/repository"
)

// Service is the ledger engine. Every money-moving operation is a bounded
// atomic write set across Booking, Account and Transaction records: the
// grouped changes commit together or leave no trace.
type Service struct {
	store    Store
	bookings BookingReader
	accounts AccountLister
	txns     TransactionLister
	health   Health
	notifs   Notifier
}

func NewService(store Store, bookings BookingReader, accounts AccountLister, txns TransactionLister, health Health, notifs Notifier) *Service {
	return &Service{
		store:    store,
		bookings: bookings,
		accounts: accounts,
		txns:     txns,
		health:   health,
		notifs:   notifs,
	}
}

// CreateBooking persists the booking and, when a deposit is supplied,
// credits the account and records one income transaction linked to the
// booking, all in one atomic set.
//
// The paid amount is deliberately not bounded by the grand total here; only
// settlement enforces that bound.
func (s *Service) CreateBooking(ctx context.Context, b *domain.Booking, dep *Deposit) (*domain.Booking, error) {
	if b == nil || b.TenantID == 0 || b.ClientID == 0 || b.RoomID == 0 {
		return nil, ErrValidation
	}
	if dep != nil && (dep.Amount < 0 || dep.AccountID == 0) {
		return nil, ErrValidation
	}
	if b.Status == "" {
		b.Status = domain.BookingInquiry
	}
	if !domain.ValidStatus(b.Status) {
		return nil, ErrValidation
	}

	if dep != nil && dep.Amount > 0 {
		b.PaidAmount += dep.Amount
	}
	b.PaymentState = paymentStateFor(b, false)
	if b.ContractStatus == "" {
		b.ContractStatus = domain.ContractNone
	}

	var depositTx *domain.Transaction
	err := s.store.Atomically(ctx, func(ops *repository.LedgerOps) error {
		if err := ops.CreateBooking(b); err != nil {
			return err
		}
		if dep == nil || dep.Amount == 0 {
			return nil
		}
		if _, err := ops.GetAccount(b.TenantID, dep.AccountID); err != nil {
			return err
		}
		if err := ops.ApplyAccountDelta(b.TenantID, dep.AccountID, dep.Amount); err != nil {
			return err
		}
		depositTx = &domain.Transaction{
			TenantID:       b.TenantID,
			At:             time.Now().UTC(),
			Description:    fmt.Sprintf("Deposit for booking %d", b.ID),
			Amount:         dep.Amount,
			Kind:           domain.TxIncome,
			AccountID:      dep.AccountID,
			Category:       domain.CategoryDeposit,
			BookingID:      &b.ID,
			Status:         domain.TxPosted,
			IdempotencyKey: keyOrNil(dep.IdempotencyKey),
		}
		return ops.CreateTransaction(depositTx)
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.publish(b.TenantID, feed.Event{Entity: "booking", Action: "created", ID: b.ID, At: time.Now().UTC()})
	if depositTx != nil {
		s.publish(b.TenantID, feed.Event{Entity: "transaction", Action: "created", ID: depositTx.ID, At: time.Now().UTC()})
	}
	return b, nil
}

// RecordExpense creates an expense transaction and decrements the account
// balance in one atomic set.
func (s *Service) RecordExpense(ctx context.Context, tenantID int64, req ExpenseRequest) (*domain.Transaction, error) {
	if req.Description == "" || req.Amount <= 0 || req.AccountID == 0 {
		return nil, ErrValidation
	}

	t := &domain.Transaction{
		TenantID:    tenantID,
		At:          time.Now().UTC(),
		Description: req.Description,
		Amount:      -req.Amount,
		Kind:        domain.TxExpense,
		AccountID:   req.AccountID,
		Category:    req.Category,
		BookingID:   req.BookingID,
		Status:      domain.TxPosted,
	}

	err := s.store.Atomically(ctx, func(ops *repository.LedgerOps) error {
		if _, err := ops.GetAccount(tenantID, req.AccountID); err != nil {
			return err
		}
		if req.BookingID != nil {
			if _, err := ops.GetBooking(tenantID, *req.BookingID); err != nil {
				return err
			}
		}
		if err := ops.ApplyAccountDelta(tenantID, req.AccountID, -req.Amount); err != nil {
			return err
		}
		return ops.CreateTransaction(t)
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.publish(tenantID, feed.Event{Entity: "transaction", Action: "created", ID: t.ID, At: time.Now().UTC()})
	return t, nil
}

// SettleBooking applies a payment (amount > 0) or a refund/correction
// (amount < 0) against a booking: paid amount, account balance and one
// linked transaction move together.
func (s *Service) SettleBooking(ctx context.Context, tenantID, bookingID int64, req SettleRequest) (*domain.Booking, error) {
	if req.Amount == 0 || req.AccountID == 0 {
		return nil, ErrValidation
	}

	var settled *domain.Booking
	var settleTx *domain.Transaction
	err := s.store.Atomically(ctx, func(ops *repository.LedgerOps) error {
		b, err := ops.GetBooking(tenantID, bookingID)
		if err != nil {
			return err
		}
		if req.Amount > 0 && req.Amount > b.AmountDue() {
			return &OverAllocationError{
				Reason:    "settlement exceeds amount due",
				Requested: req.Amount,
				Limit:     b.AmountDue(),
			}
		}
		if req.Amount < 0 && -req.Amount > b.PaidAmount {
			return &OverAllocationError{
				Reason:    "refund exceeds paid amount",
				Requested: -req.Amount,
				Limit:     b.PaidAmount,
			}
		}
		acct, err := ops.GetAccount(tenantID, req.AccountID)
		if err != nil {
			return err
		}
		if req.Amount < 0 && acct.Balance < -req.Amount {
			return &OverAllocationError{
				Reason:    "refund exceeds account balance",
				Requested: -req.Amount,
				Limit:     acct.Balance,
			}
		}

		b.PaidAmount += req.Amount
		state := paymentStateFor(b, req.Amount < 0)
		if err := ops.AddToPaid(tenantID, bookingID, req.Amount, state); err != nil {
			return err
		}
		if err := ops.ApplyAccountDelta(tenantID, req.AccountID, req.Amount); err != nil {
			return err
		}

		kind := domain.TxIncome
		category := domain.CategoryPayment
		desc := fmt.Sprintf("Payment for booking %d", bookingID)
		if req.Amount < 0 {
			kind = domain.TxExpense
			category = domain.CategoryRefund
			desc = fmt.Sprintf("Refund for booking %d", bookingID)
		}
		settleTx = &domain.Transaction{
			TenantID:       tenantID,
			At:             time.Now().UTC(),
			Description:    desc,
			Amount:         req.Amount,
			Kind:           kind,
			AccountID:      req.AccountID,
			Category:       category,
			BookingID:      &bookingID,
			Status:         domain.TxPosted,
			IdempotencyKey: keyOrNil(req.IdempotencyKey),
		}
		if err := ops.CreateTransaction(settleTx); err != nil {
			return err
		}

		b.PaymentState = state
		settled = b
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.publish(tenantID, feed.Event{Entity: "booking", Action: "updated", ID: bookingID, At: time.Now().UTC()})
	s.publish(tenantID, feed.Event{Entity: "transaction", Action: "created", ID: settleTx.ID, At: time.Now().UTC()})
	return settled, nil
}

// Transfer moves money between two accounts: source decrement, destination
// increment and one transfer transaction, three record changes in one set.
func (s *Service) Transfer(ctx context.Context, tenantID int64, req TransferRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 || req.FromAccountID == 0 || req.ToAccountID == 0 || req.FromAccountID == req.ToAccountID {
		return nil, ErrValidation
	}

	desc := req.Description
	if desc == "" {
		desc = fmt.Sprintf("Transfer from account %d to account %d", req.FromAccountID, req.ToAccountID)
	}
	t := &domain.Transaction{
		TenantID:      tenantID,
		At:            time.Now().UTC(),
		Description:   desc,
		Amount:        req.Amount,
		Kind:          domain.TxTransfer,
		AccountID:     req.FromAccountID,
		DestAccountID: &req.ToAccountID,
		Category:      domain.CategoryTransfer,
		Status:        domain.TxPosted,
	}

	err := s.store.Atomically(ctx, func(ops *repository.LedgerOps) error {
		if _, err := ops.GetAccount(tenantID, req.FromAccountID); err != nil {
			return err
		}
		if _, err := ops.GetAccount(tenantID, req.ToAccountID); err != nil {
			return err
		}
		if err := ops.ApplyAccountDelta(tenantID, req.FromAccountID, -req.Amount); err != nil {
			return err
		}
		if err := ops.ApplyAccountDelta(tenantID, req.ToAccountID, req.Amount); err != nil {
			return err
		}
		return ops.CreateTransaction(t)
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.publish(tenantID, feed.Event{Entity: "transaction", Action: "created", ID: t.ID, At: time.Now().UTC()})
	return t, nil
}

// VoidTransaction applies the exact inverse of the original delta and
// removes the record. Income transactions linked to a booking also give back
// their paid-amount effect. Refused outright while the store is degraded:
// a void either fully reverses or does not happen.
func (s *Service) VoidTransaction(ctx context.Context, tenantID, txID int64) error {
	if s.health != nil && !s.health.Ready() {
		return ErrDegradedStore
	}

	err := s.store.Atomically(ctx, func(ops *repository.LedgerOps) error {
		t, err := ops.GetTransaction(tenantID, txID)
		if err != nil {
			return err
		}

		if t.Kind == domain.TxTransfer {
			if err := ops.ApplyAccountDelta(tenantID, t.AccountID, t.Amount); err != nil {
				return err
			}
			if t.DestAccountID != nil {
				if err := ops.ApplyAccountDelta(tenantID, *t.DestAccountID, -t.Amount); err != nil {
					return err
				}
			}
		} else {
			if err := ops.ApplyAccountDelta(tenantID, t.AccountID, -t.Amount); err != nil {
				return err
			}
		}

		if t.BookingID != nil && t.Kind == domain.TxIncome {
			b, err := ops.GetBooking(tenantID, *t.BookingID)
			if err != nil {
				return err
			}
			b.PaidAmount -= t.Amount
			state := paymentStateFor(b, false)
			if err := ops.AddToPaid(tenantID, *t.BookingID, -t.Amount, state); err != nil {
				return err
			}
		}

		return ops.DeleteTransaction(tenantID, txID)
	})
	if err != nil {
		return s.mapStoreErr(err)
	}

	s.publish(tenantID, feed.Event{Entity: "transaction", Action: "voided", ID: txID, At: time.Now().UTC()})
	return nil
}

// AmountDue is the state machine's completion gate query.
func (s *Service) AmountDue(ctx context.Context, tenantID, bookingID int64) (int64, error) {
	b, err := s.bookings.GetByID(ctx, tenantID, bookingID)
	if err != nil {
		return 0, s.mapStoreErr(err)
	}
	return b.AmountDue(), nil
}

func (s *Service) ListAccounts(ctx context.Context, tenantID int64) ([]domain.Account, error) {
	return s.accounts.List(ctx, tenantID)
}

func (s *Service) ListTransactions(ctx context.Context, tenantID, accountID, bookingID int64, limit, offset int) ([]domain.Transaction, error) {
	return s.txns.List(ctx, tenantID, accountID, bookingID, limit, offset)
}

// paymentStateFor derives the payment marker from the booking's updated paid
// amount. refunding reports whether the triggering movement was negative.
func paymentStateFor(b *domain.Booking, refunding bool) domain.PaymentState {
	switch {
	case refunding && b.PaidAmount <= 0:
		return domain.PaymentRefunded
	case b.FullyPaid() && b.PaidAmount > 0:
		return domain.PaymentPaid
	case b.PaidAmount > 0:
		return domain.PaymentPartial
	default:
		return domain.PaymentUnpaid
	}
}

func (s *Service) publish(tenantID int64, e feed.Event) {
	if s.notifs != nil {
		s.notifs.Publish(tenantID, e)
	}
}

// mapStoreErr sorts store failures into the caller-distinguishable buckets:
// validation-level rejections pass through, idempotency replays become
// ErrDuplicateRequest, and everything else is a retryable ErrAtomicWrite —
// nothing from the rolled-back set is visible.
func (s *Service) mapStoreErr(err error) error {
	var overErr *OverAllocationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &overErr):
		return err
	case repository.IsUniqueViolation(err):
		return ErrDuplicateRequest
	case repository.IsNotFound(err):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %v", ErrAtomicWrite, err)
	}
}

func keyOrNil(key string) *string {
	if key == "" {
		return nil
	}
	return &key
}
