package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock clock.Clock
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, clk clock.Clock) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		clock:                clk,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := clock.DayOf(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if existing != nil {
		if existing.CheckIn != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		// The day exists without a check-in, typically because an
		// approved leave wrote it first. Fill the check-in slot and
		// mark the day present.
		existing.CheckIn = &now
		existing.Status = attendance.StatusPresent
		updated, err := a.AttendanceRepository.Update(ctx, *existing)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		return attendance.ToResponse(updated), nil
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: actor.EmployeeID,
		Date:       today,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := clock.DayOf(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if existing == nil || existing.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	existing.CheckOut = &now
	existing.WorkHours = roundHours(now.Sub(*existing.CheckIn).Hours())
	if existing.WorkHours < attendance.HalfDayThresholdHours {
		existing.Status = attendance.StatusHalfDay
	}

	updated, err := a.AttendanceRepository.Update(ctx, *existing)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.ToResponse(updated), nil
}

// roundHours keeps two decimal places of the work duration.
func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	today := clock.DayOf(a.clock.Now())
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*existing)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	from, err := parseDatePtr(filter.StartDate)
	if err != nil {
		return nil, err
	}
	to, err := parseDatePtr(filter.EndDate)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, actor.EmployeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AdminListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	date, err := parseDatePtr(filter.Date)
	if err != nil {
		return nil, err
	}
	var employeeID *string
	if filter.EmployeeID != "" {
		employeeID = &filter.EmployeeID
	}

	records, err := a.AttendanceRepository.List(ctx, attendance.ListFilter{
		Date:       date,
		EmployeeID: employeeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}

// Update implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.UpdateStatusNotes(ctx, req.ID, attendance.Status(req.Status), req.Notes)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date %q: %w", value, err)
	}
	return &parsed, nil
}
