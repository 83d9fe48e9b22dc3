package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	record, err := a.attendanceService.CheckIn(r.Context())
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	record, err := a.attendanceService.CheckOut(r.Context())
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

// Today implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	record, err := a.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if record == nil {
		response.Success(w, attendance.TodayResponse{Status: "not-marked"})
		return
	}
	response.Success(w, record)
}

// My implements AttendanceHandler.
func (a *AttendanceHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MyAttendanceFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	records, err := a.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AdminListFilter{
		Date:       r.URL.Query().Get("date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	records, err := a.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Update implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := a.attendanceService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", updated)
}
