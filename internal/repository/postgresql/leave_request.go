package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			reason, status, total_days
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveType,
		request.StartDate, request.EndDate, request.Reason,
		request.Status, request.TotalDays,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.admin_comment, lr.approved_by, lr.total_days,
			   lr.created_at, lr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code, e.department
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
		&lr.Reason, &lr.Status, &lr.AdminComment, &lr.ApprovedBy, &lr.TotalDays,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.EmployeeCode, &lr.Department,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date,
			   reason, status, admin_comment, approved_by, total_days,
			   created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
			&lr.Reason, &lr.Status, &lr.AdminComment, &lr.ApprovedBy, &lr.TotalDays,
			&lr.CreatedAt, &lr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.admin_comment, lr.approved_by, lr.total_days,
			   lr.created_at, lr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code, e.department,
			   a.first_name || ' ' || a.last_name AS approver_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN employees a ON a.id = lr.approved_by
	`
	var args []interface{}
	if status != nil {
		query += ` WHERE lr.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
			&lr.Reason, &lr.Status, &lr.AdminComment, &lr.ApprovedBy, &lr.TotalDays,
			&lr.CreatedAt, &lr.UpdatedAt,
			&lr.EmployeeName, &lr.EmployeeCode, &lr.Department,
			&lr.ApproverName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

// UpdateDecision implements leave.LeaveRequestRepository. The current
// status is intentionally not re-checked before writing.
func (r *leaveRequestRepository) UpdateDecision(ctx context.Context, id string, status leave.Status, comment *string, approverID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2, admin_comment = $3, approved_by = $4, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, comment, approverID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave decision: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	return r.GetByID(ctx, id)
}

// DeleteOwnedPending implements leave.LeaveRequestRepository. The query
// filters by owner and pending status so callers cannot distinguish
// "not yours" from "not pending".
func (r *leaveRequestRepository) DeleteOwnedPending(ctx context.Context, id string, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_requests
		WHERE id = $1 AND employee_id = $2 AND status = $3
	`

	commandTag, err := q.Exec(ctx, query, id, employeeID, leave.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to delete leave request: %w", err)
	}

	return commandTag.RowsAffected() > 0, nil
}
