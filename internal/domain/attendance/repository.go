package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the persistence contract for attendance
// records. The (employee_id, date) pair is a uniqueness key enforced by
// storage; Create must re-signal a unique violation on that key as
// ErrAlreadyCheckedIn so concurrent check-ins never leak a raw storage
// error.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update persists check-in/check-out/status/work-hours mutations.
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// UpsertLeaveDay writes {status: leave} for (employeeID, date),
	// creating the record when absent and overwriting status when
	// present. One call per covered day; the caller loops.
	UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error

	// UpdateStatusNotes is the admin override path. No work-hours
	// recomputation happens.
	UpdateStatusNotes(ctx context.Context, id string, status Status, notes *string) (Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}

// ListFilter narrows the privileged listing.
type ListFilter struct {
	Date       *time.Time
	EmployeeID *string
}
