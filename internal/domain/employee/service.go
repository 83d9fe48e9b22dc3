package employee

import "context"

// EmployeeService defines business logic for employee management. The
// authenticated actor is read from the request context claims.
type EmployeeService interface {
	// Create registers a new employee (privileged actors only; HR may
	// not create admin accounts).
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get returns a single employee. Non-privileged actors may only
	// fetch their own record.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List returns all employees (privileged actors only).
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update applies the role-gated field set for the actor.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee. Self-deletion is rejected, and HR may
	// not delete admin accounts.
	Delete(ctx context.Context, id string) error
}
