package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")

	// ErrNotFoundOrNotDeletable deliberately merges "not yours" and "not
	// pending" into one not-found-shaped failure; the withdrawal query
	// already filters by owner and pending status.
	ErrNotFoundOrNotDeletable = errors.New("leave request not found or cannot be deleted")
)
