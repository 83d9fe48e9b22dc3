package http

import (
	"log/slog"
	"os"

	"github.com/dayflow-hq/hrms-backend-go/internal/config"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hrms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/verify-email", authHandler.VerifyEmail)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)

				// HR and admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.PrivilegedOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/my", attendanceHandler.My)

				// HR and admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.PrivilegedOnly)
					r.Get("/", attendanceHandler.List)
					r.Put("/{id}", attendanceHandler.Update)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/my", leaveHandler.My)
				r.Delete("/{id}", leaveHandler.Withdraw)

				// HR and admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.PrivilegedOnly)
					r.Get("/", leaveHandler.List)
					r.Put("/{id}/decision", leaveHandler.Decide)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.My)
				r.Get("/{id}/slip", payrollHandler.Slip)
				r.Get("/{id}/slip/pdf", payrollHandler.SlipPDF)

				// HR and admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.PrivilegedOnly)
					r.Get("/", payrollHandler.List)
					r.Put("/{id}/salary", payrollHandler.UpdateSalary)
				})
			})
		})
	})
	return r
}
