package ledger

// Deposit is an optional initial payment committed atomically with a new
// booking.
type Deposit struct {
	Amount         int64  `json:"amount"`
	AccountID      int64  `json:"account_id"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type ExpenseRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Category    string `json:"category"`
	AccountID   int64  `json:"account_id" binding:"required"`
	BookingID   *int64 `json:"booking_id,omitempty"`
}

// SettleRequest moves money against a booking. Amount may be negative for a
// refund or correction.
type SettleRequest struct {
	Amount         int64  `json:"amount" binding:"required"`
	AccountID      int64  `json:"account_id" binding:"required"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type TransferRequest struct {
	FromAccountID int64  `json:"from_account_id" binding:"required"`
	ToAccountID   int64  `json:"to_account_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	Description   string `json:"description"`
}
