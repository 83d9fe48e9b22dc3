package employee

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/clock"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	runTx database.TxRunner
	clock clock.Clock
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, runTx database.TxRunner, clk clock.Clock) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		runTx:              runTx,
		clock:              clk,
	}
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !actor.IsPrivileged() {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	role := employee.RoleEmployee
	if req.Role != "" {
		role = employee.Role(req.Role)
	}
	if !actor.Role.CanActOn(role) {
		return employee.EmployeeResponse{}, employee.ErrHRCannotTouchAdmin
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Department:   req.Department,
		Phone:        req.Phone,
		JoinDate:     e.clock.Now(),
		IsActive:     true,
		AuthProvider: "local",
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !actor.IsPrivileged() && actor.EmployeeID != id {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsPrivileged() {
		return nil, employee.ErrForbidden
	}

	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Which request fields take
// effect depends on the actor: employees edit a small contact field set
// on their own record, privileged actors edit everything their role may
// reach.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !actor.IsPrivileged() && actor.EmployeeID != req.ID {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	// The role check and the write act on the same row version.
	var updated employee.Employee
	err = e.runTx(ctx, func(txCtx context.Context) error {
		target, err := e.EmployeeRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if actor.IsPrivileged() {
			if !actor.Role.CanActOn(target.Role) {
				return employee.ErrHRCannotTouchAdmin
			}
			if req.Role != nil && !actor.Role.CanActOn(employee.Role(*req.Role)) {
				return employee.ErrHRCannotTouchAdmin
			}
			applyPrivilegedFields(&target, req)
		} else {
			applySelfFields(&target, req)
		}

		updated, err = e.EmployeeRepository.Update(txCtx, target)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// applySelfFields applies the contact fields an employee may edit on
// their own record. Everything else in the request is ignored.
func applySelfFields(target *employee.Employee, req employee.UpdateEmployeeRequest) {
	if req.Phone != nil {
		target.Phone = req.Phone
	}
	if req.Address != nil {
		target.Address = req.Address
	}
	if req.ProfilePicture != nil {
		target.ProfilePicture = req.ProfilePicture
	}
}

func applyPrivilegedFields(target *employee.Employee, req employee.UpdateEmployeeRequest) {
	applySelfFields(target, req)
	if req.FirstName != nil {
		target.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		target.LastName = *req.LastName
	}
	if req.Role != nil {
		target.Role = employee.Role(*req.Role)
	}
	if req.Department != nil {
		target.Department = req.Department
	}
	if req.Designation != nil {
		target.Designation = req.Designation
	}
	if req.Salary != nil {
		target.Salary = *req.Salary
	}
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.IsPrivileged() {
		return employee.ErrForbidden
	}
	if actor.EmployeeID == id {
		return employee.ErrCannotDeleteSelf
	}

	return e.runTx(ctx, func(txCtx context.Context) error {
		target, err := e.EmployeeRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !actor.Role.CanActOn(target.Role) {
			return employee.ErrHRCannotTouchAdmin
		}
		return e.EmployeeRepository.Delete(txCtx, id)
	})
}
