package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var applyReq leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Apply(r.Context(), applyReq)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created)
}

// My implements LeaveHandler.
func (l *LeaveHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.GetMyLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Decide implements LeaveHandler.
func (l *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decideReq leave.DecideLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decideReq.ID = chi.URLParam(r, "id")

	decided, err := l.leaveService.Decide(r.Context(), decideReq)
	if err != nil {
		slog.Error("Decide leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+string(decided.Status), decided)
}

// Withdraw implements LeaveHandler.
func (l *LeaveHandlerImpl) Withdraw(w http.ResponseWriter, r *http.Request) {
	if err := l.leaveService.Withdraw(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Withdraw leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request withdrawn successfully", nil)
}
