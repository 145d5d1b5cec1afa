package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("record not found")

	// ErrDuplicateRequest signals an idempotency-key replay: the original
	// write already committed and was not applied a second time.
	ErrDuplicateRequest = errors.New("duplicate request")

	// ErrDegradedStore is returned when the store cannot guarantee atomic
	// rollback, e.g. while unreachable. The operation is refused outright
	// rather than risking a partial reversal.
	ErrDegradedStore = errors.New("store cannot guarantee atomic rollback")

	// ErrAtomicWrite wraps commit failures. None of the grouped writes are
	// visible; the caller may retry the whole operation.
	ErrAtomicWrite = errors.New("atomic write set failed")
)

// OverAllocationError blocks a settlement or refund that exceeds its bound.
type OverAllocationError struct {
	Reason    string
	Requested int64
	Limit     int64
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("%s: requested %d, limit %d", e.Reason, e.Requested, e.Limit)
}
