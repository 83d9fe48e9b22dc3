package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's check-in for the authenticated employee.
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut records today's check-out and derives work hours and the
	// half-day downgrade.
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// Today returns the authenticated employee's record for today, or
	// nil when the day is not marked yet.
	Today(ctx context.Context) (*AttendanceResponse, error)

	// GetMyAttendance lists the authenticated employee's records,
	// optionally bounded by a date range.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]AttendanceResponse, error)

	// List returns attendance records across employees (privileged).
	List(ctx context.Context, filter AdminListFilter) ([]AttendanceResponse, error)

	// Update is the privileged manual status/notes correction.
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
