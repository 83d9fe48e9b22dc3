package leave

import (
	"math"
	"time"
)

type Type string

const (
	TypePaid   Type = "paid"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
	TypeCasual Type = "casual"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	// AdminComment and ApprovedBy are set by the deciding actor.
	AdminComment *string
	ApprovedBy   *string
	// TotalDays counts both endpoints inclusively.
	TotalDays int
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for admin listings
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	ApproverName *string
}

// TotalDays returns the inclusive day count of [start, end]. End before
// start is not defended against and yields a non-positive count, matching
// the stored value the rest of the system reports.
func TotalDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}
