package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

func actorContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"email":       employeeID + "@example.com",
		"role":        role,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeEmployeeRepository struct {
	employee.EmployeeRepository
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, exists := f.employees[id]
	if !exists {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) UpdateSalary(ctx context.Context, id string, salary employee.Salary) (employee.Employee, error) {
	emp, exists := f.employees[id]
	if !exists {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.Salary = salary
	return *emp, nil
}

type fakeAttendanceLog struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (f *fakeAttendanceLog) ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.EmployeeID != employeeID {
			continue
		}
		if from != nil && record.Date.Before(*from) {
			continue
		}
		if to != nil && record.Date.After(*to) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func day(dayOfMonth int, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(2024, 3, dayOfMonth, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

func newTestPayrollService(records []attendance.Attendance) *PayrollServiceImpl {
	dept := "Engineering"
	employees := &fakeEmployeeRepository{employees: map[string]*employee.Employee{
		"emp-1": {
			ID:           "emp-1",
			EmployeeCode: "EMP-001",
			Email:        "emp-1@example.com",
			FirstName:    "Maya",
			LastName:     "Iyer",
			Department:   &dept,
			JoinDate:     time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
			Salary: employee.Salary{
				Basic:      30000,
				Allowances: 5000,
				Deductions: 2000,
			},
		},
	}}
	return NewPayrollService(employees, &fakeAttendanceLog{records: records})
}

func TestPayrollService_GetMyPayroll_NetSalary(t *testing.T) {
	svc := newTestPayrollService(nil)

	resp, err := svc.GetMyPayroll(actorContext(t, "emp-1", "employee"))
	require.NoError(t, err)
	assert.Equal(t, 30000.0, resp.Salary.Basic)
	assert.Equal(t, 33000.0, resp.Salary.NetSalary)
	assert.Equal(t, "EMP-001", resp.Employee.EmployeeCode)
}

func TestPayrollService_NetSalary_NoClamp(t *testing.T) {
	svc := newTestPayrollService(nil)

	resp, err := svc.UpdateSalary(context.Background(), payrollUpdate("emp-1", 1000, 0, 5000))
	require.NoError(t, err)
	assert.Equal(t, -4000.0, resp.Salary.NetSalary)
}

func TestPayrollService_UpdateSalary_RejectsNegative(t *testing.T) {
	svc := newTestPayrollService(nil)

	_, err := svc.UpdateSalary(context.Background(), payrollUpdate("emp-1", -1, 0, 0))
	assert.Error(t, err)
}

func TestPayrollService_Slip_CountsByStatus(t *testing.T) {
	svc := newTestPayrollService([]attendance.Attendance{
		day(1, attendance.StatusPresent),
		day(2, attendance.StatusPresent),
		day(3, attendance.StatusLeave),
		day(4, attendance.StatusAbsent),
		day(5, attendance.StatusHalfDay),
	})

	slip, err := svc.Slip(actorContext(t, "emp-1", "employee"), "emp-1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-03", slip.Month)
	assert.Equal(t, 2, slip.Attendance.PresentDays)
	assert.Equal(t, 1, slip.Attendance.LeaveDays)
	assert.Equal(t, 1, slip.Attendance.AbsentDays)
	// Half-day records stay out of every bucket and out of the total.
	assert.Equal(t, 4, slip.Attendance.TotalWorkingDays)
	assert.Equal(t, 35000.0, slip.Earnings.Total)
	assert.Equal(t, 2000.0, slip.Deductions.Total)
	assert.Equal(t, 33000.0, slip.NetSalary)
}

func TestPayrollService_Slip_MonthWindow(t *testing.T) {
	records := []attendance.Attendance{
		day(31, attendance.StatusPresent),
		{
			EmployeeID: "emp-1",
			Date:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
		},
	}
	svc := newTestPayrollService(records)

	slip, err := svc.Slip(actorContext(t, "emp-1", "employee"), "emp-1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, slip.Attendance.PresentDays)
}

func TestPayrollService_Slip_Idempotent(t *testing.T) {
	svc := newTestPayrollService([]attendance.Attendance{
		day(1, attendance.StatusPresent),
	})
	ctx := actorContext(t, "emp-1", "employee")
	ref := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	first, err := svc.Slip(ctx, "emp-1", ref)
	require.NoError(t, err)
	second, err := svc.Slip(ctx, "emp-1", ref)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPayrollService_Slip_OtherEmployeeForbidden(t *testing.T) {
	svc := newTestPayrollService(nil)

	_, err := svc.Slip(actorContext(t, "emp-2", "employee"), "emp-1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, employee.ErrForbidden)
}

func TestPayrollService_Slip_PrivilegedCanFetchAnyone(t *testing.T) {
	svc := newTestPayrollService(nil)

	_, err := svc.Slip(actorContext(t, "hr-1", "hr"), "emp-1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
}

func TestPayrollService_SlipPDF(t *testing.T) {
	svc := newTestPayrollService([]attendance.Attendance{
		day(1, attendance.StatusPresent),
	})

	pdfBytes, err := svc.SlipPDF(actorContext(t, "emp-1", "employee"), "emp-1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func payrollUpdate(employeeID string, basic, allowances, deductions float64) payroll.UpdateSalaryRequest {
	return payroll.UpdateSalaryRequest{
		EmployeeID: employeeID,
		Basic:      basic,
		Allowances: allowances,
		Deductions: deductions,
	}
}
