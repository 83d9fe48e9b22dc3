package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/clock"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/email"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/oauth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
	emailService  email.EmailService
	clock         clock.Clock
	frontendURL   string
}

func NewAuthService(
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	emailService email.EmailService,
	clk clock.Clock,
	frontendURL string,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
		googleService:      googleService,
		emailService:       emailService,
		clock:              clk,
		frontendURL:        frontendURL,
	}
}

func (a *AuthServiceImpl) tokenPair(emp employee.Employee) (auth.AuthResponse, string, int64, error) {
	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.AuthResponse{
		Token:     accessToken,
		ExpiresAt: accessExp,
		User:      employee.ToResponse(emp),
	}, refreshToken, refreshExp, nil
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	if _, err := a.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.AuthResponse{}, "", 0, auth.ErrUserExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to hash password: %w", err)
	}

	role := employee.RoleEmployee
	if req.Role != "" {
		role = employee.Role(req.Role)
	}

	created, err := a.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JoinDate:     a.clock.Now(),
		IsActive:     true,
		AuthProvider: "local",
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return auth.AuthResponse{}, "", 0, auth.ErrUserExists
		}
		return auth.AuthResponse{}, "", 0, err
	}

	a.sendVerification(created)

	return a.tokenPair(created)
}

// sendVerification emails the verification link. Failures are logged,
// never returned.
func (a *AuthServiceImpl) sendVerification(emp employee.Employee) {
	link := fmt.Sprintf("%s/verify-email?id=%s", a.frontendURL, emp.ID)
	if err := a.emailService.SendVerification(emp.Email, emp.FullName(), link); err != nil {
		slog.Warn("failed to send verification email", "employee_id", emp.ID, "error", err)
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.AuthResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.AuthResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return a.tokenPair(emp)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// ChangePassword implements auth.AuthService. Accounts provisioned via
// Google have no usable current password and may set one directly.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return err
	}

	if emp.AuthProvider == "local" {
		if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return auth.ErrInvalidCredentials
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	emp.PasswordHash = string(hashed)
	emp.AuthProvider = "local"
	if _, err := a.EmployeeRepository.Update(ctx, emp); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// VerifyEmail implements auth.AuthService.
func (a *AuthServiceImpl) VerifyEmail(ctx context.Context, employeeID string) error {
	return a.EmployeeRepository.SetEmailVerified(ctx, employeeID)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.AuthResponse, string, int64, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to fetch google profile: %w", err)
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to get employee by email: %w", err)
		}
		emp, err = a.provisionGoogleAccount(ctx, info)
		if err != nil {
			return auth.AuthResponse{}, "", 0, err
		}
	}

	return a.tokenPair(emp)
}

// provisionGoogleAccount creates an employee record on first Google
// sign-in. The random password hash keeps the local login path closed
// until the user sets a password.
func (a *AuthServiceImpl) provisionGoogleAccount(ctx context.Context, info oauth.GoogleInformation) (employee.Employee, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var picture *string
	if info.Picture != "" {
		picture = &info.Picture
	}

	created, err := a.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode:   fmt.Sprintf("EMP-%s", uuid.NewString()[:8]),
		Email:          info.Email,
		PasswordHash:   string(hashed),
		Role:           employee.RoleEmployee,
		FirstName:      info.GivenName,
		LastName:       info.FamilyName,
		ProfilePicture: picture,
		JoinDate:       a.clock.Now(),
		IsActive:       true,
		AuthProvider:   "google",
		EmailVerified:  info.VerifiedEmail,
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}
