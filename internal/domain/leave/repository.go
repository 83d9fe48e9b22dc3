package leave

import "context"

// LeaveRequestRepository is the persistence contract for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, status *Status) ([]LeaveRequest, error)

	// UpdateDecision sets status, admin comment and approver. The
	// current status is intentionally not re-checked: re-deciding an
	// already-decided request is allowed, matching documented behavior.
	UpdateDecision(ctx context.Context, id string, status Status, comment *string, approverID string) (LeaveRequest, error)

	// DeleteOwnedPending removes the request only when it belongs to
	// employeeID and is still pending; reports whether a row was removed.
	DeleteOwnedPending(ctx context.Context, id string, employeeID string) (bool, error)
}
