package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// Get implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := e.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := e.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := e.employeeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := e.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
