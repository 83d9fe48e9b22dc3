package auth

import (
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

type SignupRequest struct {
	EmployeeCode string `json:"employee_id"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
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
	if r.Role != "" && !validator.IsInSlice(r.Role, []string{
		string(employee.RoleEmployee), string(employee.RoleHR), string(employee.RoleAdmin),
	}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of employee, hr, admin"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password is required"})
	} else if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AuthResponse is returned by signup, login and the OAuth callback.
type AuthResponse struct {
	Token     string                    `json:"token"`
	ExpiresAt int64                     `json:"expires_at"`
	User      employee.EmployeeResponse `json:"user"`
}
