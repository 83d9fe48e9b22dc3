package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/email"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	emailService email.EmailService
}

func NewLeaveService(
	leaveRequestRepository leave.LeaveRequestRepository,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	emailService email.EmailService,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		AttendanceRepository:   attendanceRepository,
		EmployeeRepository:     employeeRepository,
		emailService:           emailService,
	}
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: actor.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		TotalDays:  leave.TotalDays(startDate, endDate),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaves(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses, nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, status string) ([]leave.LeaveRequestResponse, error) {
	var statusFilter *leave.Status
	if status != "" {
		parsed := leave.Status(status)
		statusFilter = &parsed
	}

	requests, err := l.LeaveRequestRepository.List(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses, nil
}

// Decide implements leave.LeaveService. Approval reflects every covered
// day into attendance one upsert at a time; a mid-loop failure leaves the
// earlier days written and surfaces the error.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := l.LeaveRequestRepository.UpdateDecision(ctx, req.ID, leave.Status(req.Status), req.AdminComment, actor.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave decision: %w", err)
	}

	if updated.Status == leave.StatusApproved {
		for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
			if err := l.AttendanceRepository.UpsertLeaveDay(ctx, request.EmployeeID, day); err != nil {
				return leave.LeaveRequestResponse{}, fmt.Errorf("failed to mark leave day %s: %w", day.Format("2006-01-02"), err)
			}
		}
	}

	l.notifyDecision(ctx, updated)

	return leave.ToResponse(updated), nil
}

// notifyDecision emails the requester about the outcome. Failures are
// logged, never returned.
func (l *LeaveServiceImpl) notifyDecision(ctx context.Context, request leave.LeaveRequest) {
	emp, err := l.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		slog.Warn("failed to load employee for leave decision email", "employee_id", request.EmployeeID, "error", err)
		return
	}

	comment := ""
	if request.AdminComment != nil {
		comment = *request.AdminComment
	}

	err = l.emailService.SendLeaveDecision(
		emp.Email,
		emp.FullName(),
		string(request.LeaveType),
		request.StartDate.Format("2006-01-02"),
		request.EndDate.Format("2006-01-02"),
		string(request.Status),
		comment,
	)
	if err != nil {
		slog.Warn("failed to send leave decision email", "employee_id", request.EmployeeID, "error", err)
	}
}

// Withdraw implements leave.LeaveService.
func (l *LeaveServiceImpl) Withdraw(ctx context.Context, id string) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	deleted, err := l.LeaveRequestRepository.DeleteOwnedPending(ctx, id, actor.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to withdraw leave request: %w", err)
	}
	if !deleted {
		return leave.ErrNotFoundOrNotDeletable
	}
	return nil
}
