package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, email, password_hash, role, first_name, last_name,
	phone, address, profile_picture, department, designation, join_date,
	basic, allowances, deductions, is_active, auth_provider, email_verified,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Email, &emp.PasswordHash, &emp.Role,
		&emp.FirstName, &emp.LastName, &emp.Phone, &emp.Address,
		&emp.ProfilePicture, &emp.Department, &emp.Designation, &emp.JoinDate,
		&emp.Salary.Basic, &emp.Salary.Allowances, &emp.Salary.Deductions,
		&emp.IsActive, &emp.AuthProvider, &emp.EmailVerified,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, email, password_hash, role, first_name, last_name,
			phone, address, profile_picture, department, designation, join_date,
			basic, allowances, deductions, is_active, auth_provider, email_verified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.Email, emp.PasswordHash, emp.Role,
		emp.FirstName, emp.LastName, emp.Phone, emp.Address,
		emp.ProfilePicture, emp.Department, emp.Designation, emp.JoinDate,
		emp.Salary.Basic, emp.Salary.Allowances, emp.Salary.Deductions,
		emp.IsActive, emp.AuthProvider, emp.EmailVerified,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if isUniqueViolation(err, "employees_employee_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			email = $2, role = $3, first_name = $4, last_name = $5,
			phone = $6, address = $7, profile_picture = $8,
			department = $9, designation = $10,
			basic = $11, allowances = $12, deductions = $13,
			is_active = $14, password_hash = $15, email_verified = $16,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Email, emp.Role, emp.FirstName, emp.LastName,
		emp.Phone, emp.Address, emp.ProfilePicture,
		emp.Department, emp.Designation,
		emp.Salary.Basic, emp.Salary.Allowances, emp.Salary.Deductions,
		emp.IsActive, emp.PasswordHash, emp.EmailVerified,
	).Scan(&emp.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// UpdateSalary implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateSalary(ctx context.Context, id string, salary employee.Salary) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			basic = $2, allowances = $3, deductions = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, salary.Basic, salary.Allowances, salary.Deductions))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update salary: %w", err)
	}

	return emp, nil
}

// SetEmailVerified implements employee.EmployeeRepository.
func (r *employeeRepository) SetEmailVerified(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE employees SET email_verified = true, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to set email verified: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
