package auth

import (
	"context"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
)

// Actor is the authenticated identity every rule-engine call trusts.
type Actor struct {
	EmployeeID string
	Role       employee.Role
}

// IsPrivileged reports whether the actor holds an hr or admin role.
func (a Actor) IsPrivileged() bool {
	return a.Role.IsPrivileged()
}

// ActorFromContext extracts the actor from the verified token claims.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Actor{}, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Actor{}, ErrInvalidToken
	}

	return Actor{EmployeeID: employeeID, Role: employee.Role(role)}, nil
}
