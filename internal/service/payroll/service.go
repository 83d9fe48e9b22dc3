package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

type PayrollServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
}

func NewPayrollService(employeeRepository employee.EmployeeRepository, attendanceRepository attendance.AttendanceRepository) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
	}
}

func toPayrollResponse(emp employee.Employee) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		Employee: payroll.EmployeeSummary{
			ID:           emp.ID,
			Name:         emp.FullName(),
			EmployeeCode: emp.EmployeeCode,
			Department:   emp.Department,
			Designation:  emp.Designation,
			JoiningDate:  emp.JoinDate.Format("2006-01-02"),
		},
		Salary: payroll.BreakdownFor(emp.Salary),
	}
}

// GetMyPayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetMyPayroll(ctx context.Context) (payroll.PayrollResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(emp), nil
}

// List implements payroll.PayrollService.
func (p *PayrollServiceImpl) List(ctx context.Context) ([]payroll.PayrollResponse, error) {
	employees, err := p.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toPayrollResponse(emp))
	}
	return responses, nil
}

// UpdateSalary implements payroll.PayrollService.
func (p *PayrollServiceImpl) UpdateSalary(ctx context.Context, req payroll.UpdateSalaryRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated, err := p.EmployeeRepository.UpdateSalary(ctx, req.EmployeeID, employee.Salary{
		Basic:      req.Basic,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(updated), nil
}

// Slip implements payroll.PayrollService. The slip is derived from
// whatever is stored at call time; regenerating it writes nothing.
func (p *PayrollServiceImpl) Slip(ctx context.Context, employeeID string, refMonth time.Time) (payroll.SalarySlip, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payroll.SalarySlip{}, err
	}
	if !actor.IsPrivileged() && actor.EmployeeID != employeeID {
		return payroll.SalarySlip{}, employee.ErrForbidden
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SalarySlip{}, err
	}

	monthStart := time.Date(refMonth.Year(), refMonth.Month(), 1, 0, 0, 0, 0, refMonth.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	records, err := p.AttendanceRepository.ListByEmployee(ctx, employeeID, &monthStart, &monthEnd)
	if err != nil {
		return payroll.SalarySlip{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	var summary payroll.AttendanceSummary
	for _, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
	}
	summary.TotalWorkingDays = summary.PresentDays + summary.LeaveDays + summary.AbsentDays

	breakdown := payroll.BreakdownFor(emp.Salary)

	return payroll.SalarySlip{
		Employee: payroll.EmployeeSummary{
			ID:           emp.ID,
			Name:         emp.FullName(),
			EmployeeCode: emp.EmployeeCode,
			Department:   emp.Department,
			Designation:  emp.Designation,
			JoiningDate:  emp.JoinDate.Format("2006-01-02"),
		},
		Month:      monthStart.Format("2006-01"),
		Attendance: summary,
		Earnings: payroll.Earnings{
			Basic:      breakdown.Basic,
			Allowances: breakdown.Allowances,
			Total:      breakdown.Basic + breakdown.Allowances,
		},
		Deductions: payroll.Deductions{
			Total: breakdown.Deductions,
		},
		NetSalary: breakdown.NetSalary,
	}, nil
}

// SlipPDF implements payroll.PayrollService.
func (p *PayrollServiceImpl) SlipPDF(ctx context.Context, employeeID string, refMonth time.Time) ([]byte, error) {
	slip, err := p.Slip(ctx, employeeID, refMonth)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Salary Slip", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Month: %s", slip.Month), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Employee", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	writeSlipRow(pdf, "Name", slip.Employee.Name)
	writeSlipRow(pdf, "Employee ID", slip.Employee.EmployeeCode)
	if slip.Employee.Department != nil {
		writeSlipRow(pdf, "Department", *slip.Employee.Department)
	}
	if slip.Employee.Designation != nil {
		writeSlipRow(pdf, "Designation", *slip.Employee.Designation)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Attendance", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	writeSlipRow(pdf, "Present Days", fmt.Sprintf("%d", slip.Attendance.PresentDays))
	writeSlipRow(pdf, "Leave Days", fmt.Sprintf("%d", slip.Attendance.LeaveDays))
	writeSlipRow(pdf, "Absent Days", fmt.Sprintf("%d", slip.Attendance.AbsentDays))
	writeSlipRow(pdf, "Total Working Days", fmt.Sprintf("%d", slip.Attendance.TotalWorkingDays))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Earnings", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	writeSlipRow(pdf, "Basic", formatAmount(slip.Earnings.Basic))
	writeSlipRow(pdf, "Allowances", formatAmount(slip.Earnings.Allowances))
	writeSlipRow(pdf, "Total Earnings", formatAmount(slip.Earnings.Total))
	writeSlipRow(pdf, "Total Deductions", formatAmount(slip.Deductions.Total))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	writeSlipRow(pdf, "Net Salary", formatAmount(slip.NetSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render salary slip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSlipRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
