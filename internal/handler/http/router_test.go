package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/config"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/clock"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type stubAuthService struct{}

func (stubAuthService) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, string, int64, error) {
	return auth.AuthResponse{Token: "access"}, "refresh", time.Now().Add(time.Hour).Unix(), nil
}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, string, int64, error) {
	if req.Password != "password123" {
		return auth.AuthResponse{}, "", 0, auth.ErrInvalidCredentials
	}
	return auth.AuthResponse{Token: "access"}, "refresh", time.Now().Add(time.Hour).Unix(), nil
}

func (stubAuthService) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.EmployeeResponse{ID: actor.EmployeeID}, nil
}

func (stubAuthService) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	return nil
}

func (stubAuthService) VerifyEmail(ctx context.Context, employeeID string) error { return nil }

func (stubAuthService) LoginWithGoogle(ctx context.Context, code string) (auth.AuthResponse, string, int64, error) {
	return auth.AuthResponse{Token: "access"}, "refresh", time.Now().Add(time.Hour).Unix(), nil
}

type stubEmployeeService struct{}

func (stubEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: "new"}, nil
}

func (stubEmployeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id}, nil
}

func (stubEmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return []employee.EmployeeResponse{}, nil
}

func (stubEmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: req.ID}, nil
}

func (stubEmployeeService) Delete(ctx context.Context, id string) error { return nil }

type stubAttendanceService struct {
	checkInErr error
}

func (s stubAttendanceService) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	if s.checkInErr != nil {
		return attendance.AttendanceResponse{}, s.checkInErr
	}
	return attendance.AttendanceResponse{ID: "att-1"}, nil
}

func (stubAttendanceService) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{ID: "att-1"}, nil
}

func (stubAttendanceService) Today(ctx context.Context) (*attendance.AttendanceResponse, error) {
	return nil, nil
}

func (stubAttendanceService) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (stubAttendanceService) List(ctx context.Context, filter attendance.AdminListFilter) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (stubAttendanceService) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{ID: req.ID}, nil
}

type stubLeaveService struct{}

func (stubLeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	return leave.LeaveRequestResponse{ID: "lr-1"}, nil
}

func (stubLeaveService) GetMyLeaves(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (stubLeaveService) List(ctx context.Context, status string) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (stubLeaveService) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return leave.LeaveRequestResponse{ID: req.ID, Status: leave.StatusApproved}, nil
}

func (stubLeaveService) Withdraw(ctx context.Context, id string) error { return nil }

type stubPayrollService struct{}

func (stubPayrollService) GetMyPayroll(ctx context.Context) (payroll.PayrollResponse, error) {
	return payroll.PayrollResponse{}, nil
}

func (stubPayrollService) List(ctx context.Context) ([]payroll.PayrollResponse, error) {
	return nil, nil
}

func (stubPayrollService) UpdateSalary(ctx context.Context, req payroll.UpdateSalaryRequest) (payroll.PayrollResponse, error) {
	return payroll.PayrollResponse{}, nil
}

func (stubPayrollService) Slip(ctx context.Context, employeeID string, refMonth time.Time) (payroll.SalarySlip, error) {
	return payroll.SalarySlip{Month: refMonth.Format("2006-01")}, nil
}

func (stubPayrollService) SlipPDF(ctx context.Context, employeeID string, refMonth time.Time) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func newTestRouter(attendanceSvc attendance.AttendanceService) (http.Handler, jwt.Service) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:5173"

	jwtService := jwt.NewJWTService(handlerTestSecret, "1h", "24h")
	router := NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(jwtService, stubAuthService{}, nil, cfg.App.FrontendURL),
		NewEmployeeHandler(stubEmployeeService{}),
		NewAttendanceHandler(attendanceSvc),
		NewLeaveHandler(stubLeaveService{}),
		NewPayrollHandler(stubPayrollService{}, clock.System()),
	)
	return router, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, employeeID string, role employee.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(employeeID, employeeID+"@example.com", role)
	require.NoError(t, err)
	return token
}

func doRequest(router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRouter_Login_SetsRefreshCookie(t *testing.T) {
	router, _ := newTestRouter(stubAttendanceService{})

	recorder := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "maya@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestRouter_Login_BadCredentials(t *testing.T) {
	router, _ := newTestRouter(stubAttendanceService{})

	recorder := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "maya@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_ProtectedRoute_NoToken(t *testing.T) {
	router, _ := newTestRouter(stubAttendanceService{})

	recorder := doRequest(router, http.MethodGet, "/api/v1/attendance/today", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_ProtectedRoute_RefreshTokenRejected(t *testing.T) {
	router, jwtService := newTestRouter(stubAttendanceService{})

	refreshToken, _, err := jwtService.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodGet, "/api/v1/attendance/today", refreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_PrivilegedRoute_RoleGate(t *testing.T) {
	router, jwtService := newTestRouter(stubAttendanceService{})

	empToken := accessToken(t, jwtService, "emp-1", employee.RoleEmployee)
	recorder := doRequest(router, http.MethodGet, "/api/v1/employees/", empToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	hrToken := accessToken(t, jwtService, "hr-1", employee.RoleHR)
	recorder = doRequest(router, http.MethodGet, "/api/v1/employees/", hrToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	adminToken := accessToken(t, jwtService, "admin-1", employee.RoleAdmin)
	recorder = doRequest(router, http.MethodGet, "/api/v1/employees/", adminToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_CheckIn_ConflictEnvelope(t *testing.T) {
	router, jwtService := newTestRouter(stubAttendanceService{checkInErr: attendance.ErrAlreadyCheckedIn})

	token := accessToken(t, jwtService, "emp-1", employee.RoleEmployee)
	recorder := doRequest(router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestRouter_Today_NotMarked(t *testing.T) {
	router, jwtService := newTestRouter(stubAttendanceService{})

	token := accessToken(t, jwtService, "emp-1", employee.RoleEmployee)
	recorder := doRequest(router, http.MethodGet, "/api/v1/attendance/today", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, "not-marked", envelope.Data.Status)
}

func TestRouter_SlipPDF_ContentType(t *testing.T) {
	router, jwtService := newTestRouter(stubAttendanceService{})

	token := accessToken(t, jwtService, "emp-1", employee.RoleEmployee)
	recorder := doRequest(router, http.MethodGet, "/api/v1/payroll/emp-1/slip/pdf?month=2024-03", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
}

func TestRouter_SlipPDF_BadMonth(t *testing.T) {
	router, jwtService := newTestRouter(stubAttendanceService{})

	token := accessToken(t, jwtService, "emp-1", employee.RoleEmployee)
	recorder := doRequest(router, http.MethodGet, "/api/v1/payroll/emp-1/slip?month=March", token, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
