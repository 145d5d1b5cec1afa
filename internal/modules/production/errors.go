package production

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("booking not found")
	ErrUnknownStatus = errors.New("unknown booking status")
	ErrTerminalState = errors.New("booking is in a terminal state")
	ErrNoChange      = errors.New("booking already has this status")
)

// OutstandingBalanceError blocks completion while money is still owed. The
// operator is told which booking is outstanding and settles it through the
// ledger first.
type OutstandingBalanceError struct {
	BookingID int64
	AmountDue int64
}

func (e *OutstandingBalanceError) Error() string {
	return fmt.Sprintf("booking %d has %d outstanding; settle before completing", e.BookingID, e.AmountDue)
}
