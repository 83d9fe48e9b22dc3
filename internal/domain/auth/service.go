package auth

import (
	"context"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
)

// AuthService handles account creation and credential verification. It
// is the thin outer layer the rule engines trust for actor identity.
type AuthService interface {
	// Signup creates an account (default role employee) and returns a
	// token pair. Sends a verification email best effort.
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, string, int64, error)

	// Login verifies email+password and returns a token pair.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, string, int64, error)

	// Me returns the authenticated employee's profile.
	Me(ctx context.Context) (employee.EmployeeResponse, error)

	// ChangePassword rotates the credential. Local accounts must supply
	// the current password; Google accounts set one directly.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// VerifyEmail marks the account's email as verified.
	VerifyEmail(ctx context.Context, employeeID string) error

	// LoginWithGoogle resolves a Google profile to an account,
	// provisioning one on first sign-in, and returns a token pair.
	LoginWithGoogle(ctx context.Context, code string) (AuthResponse, string, int64, error)
}
