package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmployeeCodeExists = errors.New("employee id already registered")

	// Role/ownership gates
	ErrForbidden          = errors.New("access denied")
	ErrHRCannotTouchAdmin = errors.New("hr cannot act on admin accounts")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
)
