package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/clock"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	My(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateSalary(w http.ResponseWriter, r *http.Request)
	Slip(w http.ResponseWriter, r *http.Request)
	SlipPDF(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
	clock          clock.Clock
}

func NewPayrollHandler(payrollService payroll.PayrollService, clk clock.Clock) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
		clock:          clk,
	}
}

// My implements PayrollHandler.
func (p *PayrollHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	resp, err := p.payrollService.GetMyPayroll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements PayrollHandler.
func (p *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	responses, err := p.payrollService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, responses)
}

// UpdateSalary implements PayrollHandler.
func (p *PayrollHandlerImpl) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	var updateReq payroll.UpdateSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.EmployeeID = chi.URLParam(r, "id")

	updated, err := p.payrollService.UpdateSalary(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update salary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary updated successfully", updated)
}

// refMonth resolves the optional month query parameter, defaulting to
// the current month.
func (p *PayrollHandlerImpl) refMonth(r *http.Request) (time.Time, error) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		return p.clock.Now(), nil
	}
	parsed, ok := validator.IsValidMonth(monthStr)
	if !ok {
		return time.Time{}, fmt.Errorf("month must be YYYY-MM")
	}
	return parsed, nil
}

// Slip implements PayrollHandler.
func (p *PayrollHandlerImpl) Slip(w http.ResponseWriter, r *http.Request) {
	month, err := p.refMonth(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	slip, err := p.payrollService.Slip(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, slip)
}

// SlipPDF implements PayrollHandler.
func (p *PayrollHandlerImpl) SlipPDF(w http.ResponseWriter, r *http.Request) {
	month, err := p.refMonth(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	pdfBytes, err := p.payrollService.SlipPDF(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=salary-slip-%s.pdf", month.Format("2006-01")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
