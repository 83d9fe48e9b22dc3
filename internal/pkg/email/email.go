package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails. Delivery is best
// effort: callers never fail a business operation on an email error.
type EmailService interface {
	SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision, comment string) error
	SendVerification(to, employeeName, verificationLink string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveDecisionEmailData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Decision     string
	Comment      string
}

// SendLeaveDecision notifies an employee that their leave request was decided.
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision, comment string) error {
	data := leaveDecisionEmailData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Decision:     decision,
		Comment:      comment,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your leave request was %s", decision), body.String())
}

type verificationEmailData struct {
	EmployeeName     string
	VerificationLink string
}

// SendVerification sends an email verification link to a new account.
func (s *emailServiceImpl) SendVerification(to, employeeName, verificationLink string) error {
	data := verificationEmailData{
		EmployeeName:     employeeName,
		VerificationLink: verificationLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "verify_email.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Verify your email - Dayflow HRMS", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}
		lastErr = err
		slog.Warn("Failed to send email, retrying", "to", to, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
