package domain

import "time"

type AccountKind string

const (
	AccountCash AccountKind = "cash"
	AccountBank AccountKind = "bank"
)

// Account keeps a running balance maintained incrementally: every balance
// change corresponds to exactly one signed delta applied atomically with a
// Transaction record. The balance is never recomputed by summation.
type Account struct {
	ID        int64       `json:"id" gorm:"primaryKey"`
	TenantID  int64       `json:"tenant_id" gorm:"index"`
	Name      string      `json:"name" validate:"required"`
	Kind      AccountKind `json:"kind"`
	Balance   int64       `json:"balance"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type TransactionKind string

const (
	TxIncome   TransactionKind = "income"
	TxExpense  TransactionKind = "expense"
	TxTransfer TransactionKind = "transfer"
)

type TransactionStatus string

const (
	TxPosted TransactionStatus = "posted"
)

// Transaction is an immutable money movement. It may be voided, which
// reverses its account delta and removes the record, but it is never edited
// in place.
type Transaction struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	TenantID    int64           `json:"tenant_id" gorm:"index"`
	At          time.Time       `json:"at"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"` // signed, minor units
	Kind        TransactionKind `json:"kind"`
	AccountID   int64           `json:"account_id"`

	// DestAccountID is set only for transfers.
	DestAccountID *int64 `json:"dest_account_id,omitempty"`

	Category  string            `json:"category,omitempty"`
	BookingID *int64            `json:"booking_id,omitempty"`
	Status    TransactionStatus `json:"status"`

	// IdempotencyKey makes deposit and settlement writes safe to retry.
	IdempotencyKey *string `json:"-" gorm:"uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
}

// Transaction categories written by the ledger engine.
const (
	CategoryDeposit  = "booking_deposit"
	CategoryPayment  = "booking_payment"
	CategoryRefund   = "booking_refund"
	CategoryTransfer = "transfer"
)
