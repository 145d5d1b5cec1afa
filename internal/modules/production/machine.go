package production

import "studioops/internal/domain"

// Transition validates an operator-selected status change. Transitions are
// not linear: any known status may be requested directly, with three
// exceptions — terminal states accept no further changes, a no-op request is
// rejected, and entry into completed is gated on the booking's outstanding
// balance (within the paid epsilon). The gate is the only place production
// consults the ledger.
func Transition(current, requested domain.BookingStatus, amountDue int64) error {
	if !domain.ValidStatus(requested) {
		return ErrUnknownStatus
	}
	if domain.TerminalStatus(current) {
		return ErrTerminalState
	}
	if requested == current {
		return ErrNoChange
	}
	if requested == domain.BookingCompleted && amountDue > domain.PaidEpsilon {
		return &OutstandingBalanceError{AmountDue: amountDue}
	}
	return nil
}
