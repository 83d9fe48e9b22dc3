package employee

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	employees map[string]*employee.Employee
}

func newFakeEmployeeRepository() *fakeEmployeeRepository {
	return &fakeEmployeeRepository{employees: make(map[string]*employee.Employee)}
}

func (f *fakeEmployeeRepository) seed(id string, role employee.Role) {
	f.employees[id] = &employee.Employee{
		ID:           id,
		EmployeeCode: "EMP-" + id,
		Email:        id + "@example.com",
		Role:         role,
		FirstName:    "Test",
		LastName:     "Person",
		IsActive:     true,
		AuthProvider: "local",
	}
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}
	emp.ID = uuid.NewString()
	stored := emp
	f.employees[emp.ID] = &stored
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, exists := f.employees[id]
	if !exists {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

func (f *fakeEmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return *emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, exists := f.employees[emp.ID]; !exists {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	stored := emp
	f.employees[emp.ID] = &stored
	return emp, nil
}

func (f *fakeEmployeeRepository) UpdateSalary(ctx context.Context, id string, salary employee.Salary) (employee.Employee, error) {
	emp, exists := f.employees[id]
	if !exists {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.Salary = salary
	return *emp, nil
}

func (f *fakeEmployeeRepository) SetEmailVerified(ctx context.Context, id string) error {
	emp, exists := f.employees[id]
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	emp.EmailVerified = true
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if _, exists := f.employees[id]; !exists {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

// passthroughTx runs the function without a real transaction.
func passthroughTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newTestEmployeeService() (*EmployeeServiceImpl, *fakeEmployeeRepository) {
	repo := newFakeEmployeeRepository()
	repo.seed("admin-1", employee.RoleAdmin)
	repo.seed("hr-1", employee.RoleHR)
	repo.seed("emp-1", employee.RoleEmployee)
	now := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	return NewEmployeeService(repo, passthroughTx, clock.Fixed(now)), repo
}

func createRequest(code string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: code,
		Email:        code + "@example.com",
		Password:     "password123",
		FirstName:    "New",
		LastName:     "Hire",
	}
}

func TestEmployeeService_Create_ByAdmin(t *testing.T) {
	svc, repo := newTestEmployeeService()

	resp, err := svc.Create(actorContext(t, "admin-1", "admin"), createRequest("EMP-100"))
	require.NoError(t, err)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
	assert.Equal(t, "2024-03-11", resp.JoinDate)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestEmployeeService_Create_ByEmployeeForbidden(t *testing.T) {
	svc, _ := newTestEmployeeService()

	_, err := svc.Create(actorContext(t, "emp-1", "employee"), createRequest("EMP-100"))
	assert.ErrorIs(t, err, employee.ErrForbidden)
}

func TestEmployeeService_Create_HRCannotCreateAdmin(t *testing.T) {
	svc, _ := newTestEmployeeService()

	req := createRequest("EMP-100")
	req.Role = "admin"
	_, err := svc.Create(actorContext(t, "hr-1", "hr"), req)
	assert.ErrorIs(t, err, employee.ErrHRCannotTouchAdmin)
}

func TestEmployeeService_Create_AdminCanCreateAdmin(t *testing.T) {
	svc, _ := newTestEmployeeService()

	req := createRequest("EMP-100")
	req.Role = "admin"
	resp, err := svc.Create(actorContext(t, "admin-1", "admin"), req)
	require.NoError(t, err)
	assert.Equal(t, employee.RoleAdmin, resp.Role)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := actorContext(t, "admin-1", "admin")

	_, err := svc.Create(ctx, createRequest("EMP-100"))
	require.NoError(t, err)

	dup := createRequest("EMP-101")
	dup.Email = "EMP-100@example.com"
	_, err = svc.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Get_SelfAndOthers(t *testing.T) {
	svc, _ := newTestEmployeeService()

	_, err := svc.Get(actorContext(t, "emp-1", "employee"), "emp-1")
	require.NoError(t, err)

	_, err = svc.Get(actorContext(t, "emp-1", "employee"), "hr-1")
	assert.ErrorIs(t, err, employee.ErrForbidden)

	_, err = svc.Get(actorContext(t, "hr-1", "hr"), "emp-1")
	require.NoError(t, err)
}

func TestEmployeeService_List_EmployeeForbidden(t *testing.T) {
	svc, _ := newTestEmployeeService()

	_, err := svc.List(actorContext(t, "emp-1", "employee"))
	assert.ErrorIs(t, err, employee.ErrForbidden)

	employees, err := svc.List(actorContext(t, "hr-1", "hr"))
	require.NoError(t, err)
	assert.Len(t, employees, 3)
}

func TestEmployeeService_Update_SelfLimitedFields(t *testing.T) {
	svc, _ := newTestEmployeeService()

	phone := "+62-812-1111"
	name := "Hacked"
	role := "admin"
	resp, err := svc.Update(actorContext(t, "emp-1", "employee"), employee.UpdateEmployeeRequest{
		ID:        "emp-1",
		Phone:     &phone,
		FirstName: &name,
		Role:      &role,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, phone, *resp.Phone)
	// Name and role edits on the self path are dropped, not errors.
	assert.Equal(t, "Test", resp.FirstName)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
}

func TestEmployeeService_Update_SelfOtherRecordForbidden(t *testing.T) {
	svc, _ := newTestEmployeeService()

	phone := "+62-812-1111"
	_, err := svc.Update(actorContext(t, "emp-1", "employee"), employee.UpdateEmployeeRequest{
		ID:    "hr-1",
		Phone: &phone,
	})
	assert.ErrorIs(t, err, employee.ErrForbidden)
}

func TestEmployeeService_Update_HRCannotTouchAdmin(t *testing.T) {
	svc, _ := newTestEmployeeService()

	name := "Renamed"
	_, err := svc.Update(actorContext(t, "hr-1", "hr"), employee.UpdateEmployeeRequest{
		ID:        "admin-1",
		FirstName: &name,
	})
	assert.ErrorIs(t, err, employee.ErrHRCannotTouchAdmin)
}

func TestEmployeeService_Update_HRCannotPromoteToAdmin(t *testing.T) {
	svc, _ := newTestEmployeeService()

	role := "admin"
	_, err := svc.Update(actorContext(t, "hr-1", "hr"), employee.UpdateEmployeeRequest{
		ID:   "emp-1",
		Role: &role,
	})
	assert.ErrorIs(t, err, employee.ErrHRCannotTouchAdmin)
}

func TestEmployeeService_Update_AdminEditsEverything(t *testing.T) {
	svc, _ := newTestEmployeeService()

	name := "Renamed"
	role := "hr"
	resp, err := svc.Update(actorContext(t, "admin-1", "admin"), employee.UpdateEmployeeRequest{
		ID:        "emp-1",
		FirstName: &name,
		Role:      &role,
		Salary:    &employee.Salary{Basic: 30000, Allowances: 5000, Deductions: 2000},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.FirstName)
	assert.Equal(t, employee.RoleHR, resp.Role)
	assert.Equal(t, 30000.0, resp.Salary.Basic)
}

func TestEmployeeService_Delete(t *testing.T) {
	svc, repo := newTestEmployeeService()

	require.NoError(t, svc.Delete(actorContext(t, "admin-1", "admin"), "emp-1"))
	_, err := repo.GetByID(context.Background(), "emp-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_SelfRejected(t *testing.T) {
	svc, _ := newTestEmployeeService()

	err := svc.Delete(actorContext(t, "admin-1", "admin"), "admin-1")
	assert.ErrorIs(t, err, employee.ErrCannotDeleteSelf)
}

func TestEmployeeService_Delete_HRCannotDeleteAdmin(t *testing.T) {
	svc, _ := newTestEmployeeService()

	err := svc.Delete(actorContext(t, "hr-1", "hr"), "admin-1")
	assert.ErrorIs(t, err, employee.ErrHRCannotTouchAdmin)
}

func TestEmployeeService_Delete_EmployeeForbidden(t *testing.T) {
	svc, _ := newTestEmployeeService()

	err := svc.Delete(actorContext(t, "emp-1", "employee"), "hr-1")
	assert.ErrorIs(t, err, employee.ErrForbidden)
}
