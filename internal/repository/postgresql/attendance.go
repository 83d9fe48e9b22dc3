package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, status, work_hours, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.CheckIn, att.CheckOut,
		att.Status, att.WorkHours, att.Notes,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		// Two concurrent first check-ins race on the (employee, date)
		// key; the loser gets the same domain error as a plain repeat.
		if isUniqueViolation(err, "attendances_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
			   a.status, a.work_hours, a.notes, a.created_at, a.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.WorkHours, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeCode,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out,
			   status, work_hours, notes, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.WorkHours, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			check_in = $2, check_out = $3, status = $4, work_hours = $5,
			notes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.CheckIn, att.CheckOut, att.Status, att.WorkHours, att.Notes,
	).Scan(&att.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return att, nil
}

// UpsertLeaveDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, status, work_hours)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, uuid.NewString(), employeeID, date, attendance.StatusLeave)
	if err != nil {
		return fmt.Errorf("failed to upsert leave day: %w", err)
	}
	return nil
}

// UpdateStatusNotes implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateStatusNotes(ctx context.Context, id string, status attendance.Status, notes *string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET status = $2, notes = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, notes)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to override attendance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	return r.GetByID(ctx, id)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out,
			   status, work_hours, notes, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}

	if from != nil && to != nil {
		query += ` AND date BETWEEN $2 AND $3`
		args = append(args, *from, *to)
	}
	query += ` ORDER BY date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.WorkHours, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
			   a.status, a.work_hours, a.notes, a.created_at, a.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
	`

	var conditions []string
	var args []interface{}

	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.WorkHours, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}
