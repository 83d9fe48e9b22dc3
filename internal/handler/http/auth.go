package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

// Signup implements AuthHandler.
func (a *AuthHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	var signupReq auth.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		slog.Error("Signup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	authResp, refreshToken, refreshExp, err := a.authService.Signup(r.Context(), signupReq)
	if err != nil {
		slog.Error("Signup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(refreshToken, refreshExp))
	response.Created(w, "Account created successfully", authResp)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	authResp, refreshToken, refreshExp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(refreshToken, refreshExp))
	response.SuccessWithMessage(w, "Logged in successfully", authResp)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := a.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var changeReq auth.ChangePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}

// VerifyEmail implements AuthHandler.
func (a *AuthHandlerImpl) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var verifyReq struct {
		EmployeeID string `json:"employee_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&verifyReq); err != nil || verifyReq.EmployeeID == "" {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.VerifyEmail(r.Context(), verifyReq.EmployeeID); err != nil {
		slog.Error("VerifyEmail service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email verified successfully", nil)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}

	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" || stateParam != stateReq.Value {
		slog.Error("State mismatch", "error", auth.ErrOAuthStateMismatch)
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		redirectWithError("code_empty")
		return
	}

	authResp, refreshToken, refreshExp, err := a.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		slog.Error("Failed to login with Google", "error", err)
		redirectWithError("login_failed")
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(refreshToken, refreshExp))

	slog.Info("User logged in successfully via Google OAuth")
	redirectURL := fmt.Sprintf("%s/auth/callback/google?token=%s", a.frontendURL, url.QueryEscape(authResp.Token))
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}
