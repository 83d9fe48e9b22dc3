package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

// HalfDayThresholdHours is the work duration under which a checked-out
// day is downgraded to half-day. The downgrade is the only automatic
// status change on check-out; long days are never upgraded.
const HalfDayThresholdHours = 4.0

type Attendance struct {
	ID         string
	EmployeeID string
	// Date is the day key: the check-in timestamp truncated to local
	// midnight. At most one record exists per (employee, date).
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Status    Status
	WorkHours float64
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for admin listings
	EmployeeName *string
	EmployeeCode *string
}
