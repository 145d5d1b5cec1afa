package scheduling

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	// ErrHardConflict blocks the proposal; the time or resource must change.
	ErrHardConflict = errors.New("hard scheduling conflict")

	// ErrSoftConflict is overridable with an explicit force acknowledgment.
	ErrSoftConflict = errors.New("soft scheduling conflict")

	// ErrFlaggedClient requires its own acknowledgment, separate from the
	// scheduling force flag.
	ErrFlaggedClient = errors.New("client is flagged")
)
