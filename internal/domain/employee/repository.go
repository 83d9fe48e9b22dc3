package employee

import "context"

// EmployeeRepository is the persistence contract for employee records.
// Implementations must re-signal unique violations on email/employee_code
// as ErrEmailExists / ErrEmployeeCodeExists, never as raw storage errors.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateSalary(ctx context.Context, id string, salary Salary) (Employee, error)
	SetEmailVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
