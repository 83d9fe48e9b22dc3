package response

import (
	"errors"
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrUserExists):
		Conflict(w, "User already exists")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already registered")
	case errors.Is(err, employee.ErrHRCannotTouchAdmin):
		Forbidden(w, "HR cannot act on admin accounts")
	case errors.Is(err, employee.ErrForbidden):
		Forbidden(w, "Access denied")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Please check in first", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Status must be approved or rejected", nil)
	case errors.Is(err, leave.ErrNotFoundOrNotDeletable):
		NotFound(w, "Leave request not found or cannot be deleted")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
