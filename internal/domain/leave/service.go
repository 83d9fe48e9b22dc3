package leave

import "context"

// LeaveService defines business logic for the leave workflow.
type LeaveService interface {
	// Apply submits a pending leave request for the authenticated
	// employee. No balance ledger exists; any well-formed request is
	// accepted.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// GetMyLeaves lists the authenticated employee's requests.
	GetMyLeaves(ctx context.Context) ([]LeaveRequestResponse, error)

	// List returns requests across employees (privileged), optionally
	// filtered by status.
	List(ctx context.Context, status string) ([]LeaveRequestResponse, error)

	// Decide approves or rejects a request. Approval reflects the full
	// inclusive date range into attendance as leave days.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	// Withdraw deletes the authenticated employee's own pending request.
	Withdraw(ctx context.Context, id string) error
}
