package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNotCheckedIn      = errors.New("please check in first")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
