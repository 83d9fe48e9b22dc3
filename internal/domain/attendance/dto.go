package attendance

import (
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Status       Status  `json:"status"`
	WorkHours    float64 `json:"work_hours"`
	Notes        *string `json:"notes,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

// ToResponse maps an entity to its API shape.
func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		CheckIn:      timePtrToString(att.CheckIn),
		CheckOut:     timePtrToString(att.CheckOut),
		Status:       att.Status,
		WorkHours:    att.WorkHours,
		Notes:        att.Notes,
		EmployeeName: att.EmployeeName,
		EmployeeCode: att.EmployeeCode,
	}
}

// TodayResponse is returned by the today endpoint when no record exists
// yet; the client renders the not-marked placeholder.
type TodayResponse struct {
	Status string `json:"status"`
}

type MyAttendanceFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminListFilter struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id"`
}

func (f *AdminListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if f.EmployeeID != "" && !validator.IsValidUUID(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest is the privileged status/notes override.
type UpdateAttendanceRequest struct {
	ID     string  `json:"-"`
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !validator.IsInSlice(r.Status, []string{
		string(StatusPresent), string(StatusAbsent), string(StatusHalfDay), string(StatusLeave),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of present, absent, half-day, leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
