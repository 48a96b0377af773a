package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrOrgAccessRequired      = errors.New("organization access required")
	ErrEmployeeAccessRequired = errors.New("employee access required")
)
