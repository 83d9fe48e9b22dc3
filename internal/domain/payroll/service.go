package payroll

import (
	"context"
	"time"
)

// PayrollService derives salary figures from stored compensation and
// attendance. Every read is pure and idempotent.
type PayrollService interface {
	// GetMyPayroll returns the authenticated employee's breakdown.
	GetMyPayroll(ctx context.Context) (PayrollResponse, error)

	// List returns every employee's breakdown (privileged).
	List(ctx context.Context) ([]PayrollResponse, error)

	// UpdateSalary replaces an employee's compensation (privileged).
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (PayrollResponse, error)

	// Slip builds the salary slip for the month containing refMonth.
	// Employees may only request their own slip.
	Slip(ctx context.Context, employeeID string, refMonth time.Time) (SalarySlip, error)

	// SlipPDF renders the same slip as a PDF document.
	SlipPDF(ctx context.Context, employeeID string, refMonth time.Time) ([]byte, error)
}
