package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow-hq/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/clock"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/email"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/oauth"
	"github.com/dayflow-hq/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hq/hrms-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hq/hrms-backend-go/internal/service/auth"
	employeeService "github.com/dayflow-hq/hrms-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hq/hrms-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hq/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	systemClock := clock.System()

	auth := authService.NewAuthService(employeeRepo, jwtService, googleService, emailService, systemClock, cfg.App.FrontendURL)
	employees := employeeService.NewEmployeeService(employeeRepo, postgresql.TxRunnerFor(db), systemClock)
	attendance := attendanceService.NewAttendanceService(attendanceRepo, systemClock)
	leaves := leaveService.NewLeaveService(leaveRequestRepo, attendanceRepo, employeeRepo, emailService)
	payroll := payrollService.NewPayrollService(employeeRepo, attendanceRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(jwtService, auth, googleService, cfg.App.FrontendURL),
		appHTTP.NewEmployeeHandler(employees),
		appHTTP.NewAttendanceHandler(attendance),
		appHTTP.NewLeaveHandler(leaves),
		appHTTP.NewPayrollHandler(payroll, systemClock),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
