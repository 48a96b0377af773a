package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeExists     = errors.New("an employee with this email already exists")
	ErrEmployeeInactive   = errors.New("employee is inactive")
	ErrBankDetailNotFound = errors.New("bank detail not found")
)
