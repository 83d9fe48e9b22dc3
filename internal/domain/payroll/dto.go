package payroll

import (
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

// EmployeeSummary identifies the employee a payroll figure belongs to.
type EmployeeSummary struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	EmployeeCode string  `json:"employee_id"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	JoiningDate  string  `json:"joining_date,omitempty"`
}

// SalaryBreakdown is the compensation triple plus derived net pay.
type SalaryBreakdown struct {
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	NetSalary  float64 `json:"netSalary"`
}

type PayrollResponse struct {
	Employee EmployeeSummary `json:"employee"`
	Salary   SalaryBreakdown `json:"salary"`
}

// UpdateSalaryRequest replaces the stored compensation triple.
type UpdateSalaryRequest struct {
	EmployeeID string  `json:"-"`
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Basic < 0 {
		errs = append(errs, validator.ValidationError{Field: "basic", Message: "basic must not be negative"})
	}
	if r.Allowances < 0 {
		errs = append(errs, validator.ValidationError{Field: "allowances", Message: "allowances must not be negative"})
	}
	if r.Deductions < 0 {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "deductions must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceSummary carries the informational day counts on a slip.
// Half-day records are counted in none of the buckets nor the total,
// matching the source system's reporting.
type AttendanceSummary struct {
	PresentDays      int `json:"presentDays"`
	LeaveDays        int `json:"leaveDays"`
	AbsentDays       int `json:"absentDays"`
	TotalWorkingDays int `json:"totalWorkingDays"`
}

type Earnings struct {
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Total      float64 `json:"total"`
}

type Deductions struct {
	Total float64 `json:"total"`
}

// SalarySlip is a derived monthly report; nothing on it is persisted and
// attendance never pro-rates the pay figures.
type SalarySlip struct {
	Employee   EmployeeSummary   `json:"employee"`
	Month      string            `json:"month"`
	Attendance AttendanceSummary `json:"attendance"`
	Earnings   Earnings          `json:"earnings"`
	Deductions Deductions        `json:"deductions"`
	NetSalary  float64           `json:"netSalary"`
}

// BreakdownFor derives the full salary breakdown from a compensation
// structure.
func BreakdownFor(s employee.Salary) SalaryBreakdown {
	return SalaryBreakdown{
		Basic:      s.Basic,
		Allowances: s.Allowances,
		Deductions: s.Deductions,
		NetSalary:  s.Net(),
	}
}
