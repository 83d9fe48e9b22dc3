package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleHR       Role = "hr"       // Can manage employees except admins
	RoleAdmin    Role = "admin"    // Full access
)

// IsPrivileged reports whether the role can act on other employees'
// records. HR and admin are both privileged, but HR may never act on an
// admin account.
func (r Role) IsPrivileged() bool {
	return r == RoleHR || r == RoleAdmin
}

// CanActOn reports whether an actor with role r may mutate or delete an
// account with the target role.
func (r Role) CanActOn(target Role) bool {
	if !r.IsPrivileged() {
		return false
	}
	if r == RoleHR && target == RoleAdmin {
		return false
	}
	return true
}

// Salary is the compensation structure net pay derives from.
type Salary struct {
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
}

// Net returns basic + allowances - deductions. No clamping: deductions
// exceeding earnings yield a negative net.
func (s Salary) Net() float64 {
	return s.Basic + s.Allowances - s.Deductions
}

type Employee struct {
	ID             string
	EmployeeCode   string
	Email          string
	PasswordHash   string
	Role           Role
	FirstName      string
	LastName       string
	Phone          *string
	Address        *string
	ProfilePicture *string
	Department     *string
	Designation    *string
	JoinDate       time.Time
	Salary         Salary
	IsActive       bool
	AuthProvider   string
	EmailVerified  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the display name used in payroll output and emails.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
