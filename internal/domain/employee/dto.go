package employee

import (
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_id"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role,omitempty"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Department   *string `json:"department,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be 3-20 letters, digits or dashes"})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleHR), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of employee, hr, admin"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries every editable field. Which fields are
// actually applied depends on the actor's role: employees may only touch
// phone, address and profile_picture on their own record.
type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Role           *string `json:"role,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Address        *string   `json:"address,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Designation    *string   `json:"designation,omitempty"`
	Salary         *Salary `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleEmployee), string(RoleHR), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of employee, hr, admin"})
	}
	if r.Salary != nil {
		if r.Salary.Basic < 0 || r.Salary.Allowances < 0 || r.Salary.Deductions < 0 {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary amounts must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is the serialized employee. The credential hash never
// leaves the service layer.
type EmployeeResponse struct {
	ID             string    `json:"id"`
	EmployeeCode   string    `json:"employee_id"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          *string   `json:"phone,omitempty"`
	Address        *string   `json:"address,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Designation    *string   `json:"designation,omitempty"`
	JoinDate       string    `json:"joining_date"`
	Salary         Salary    `json:"salary"`
	IsActive       bool      `json:"is_active"`
	EmailVerified  bool      `json:"email_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse maps an entity to its API shape.
func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		Email:          emp.Email,
		Role:           emp.Role,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Phone:          emp.Phone,
		Address:        emp.Address,
		ProfilePicture: emp.ProfilePicture,
		Department:     emp.Department,
		Designation:    emp.Designation,
		JoinDate:       emp.JoinDate.Format("2006-01-02"),
		Salary:         emp.Salary,
		IsActive:       emp.IsActive,
		EmailVerified:  emp.EmailVerified,
		CreatedAt:      emp.CreatedAt,
	}
}
