package leave

import (
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is required"})
	} else if !validator.IsInSlice(r.LeaveType, []string{
		string(TypePaid), string(TypeSick), string(TypeUnpaid), string(TypeCasual),
	}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of paid, sick, unpaid, casual"})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideLeaveRequest is the privileged approve/reject action.
type DecideLeaveRequest struct {
	ID           string  `json:"-"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	// The decision value gets its own sentinel so clients can tell it
	// apart from a malformed body.
	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		return ErrInvalidDecision
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	LeaveType    Type    `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       Status  `json:"status"`
	AdminComment *string `json:"admin_comment,omitempty"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	TotalDays    int     `json:"total_days"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Department   *string `json:"department,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse maps an entity to its API shape.
func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		LeaveType:    lr.LeaveType,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Reason:       lr.Reason,
		Status:       lr.Status,
		AdminComment: lr.AdminComment,
		ApprovedBy:   lr.ApprovedBy,
		TotalDays:    lr.TotalDays,
		EmployeeName: lr.EmployeeName,
		EmployeeCode: lr.EmployeeCode,
		Department:   lr.Department,
		ApproverName: lr.ApproverName,
		CreatedAt:    lr.CreatedAt.Format(time.RFC3339),
	}
}
