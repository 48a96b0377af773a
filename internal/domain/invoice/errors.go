package invoice

import "errors"

var (
	ErrCycleNotFound       = errors.New("invoice cycle not found")
	ErrCycleExists         = errors.New("an invoice cycle already exists for this month")
	ErrCycleNotCompletable = errors.New("cycle has invoices that are not yet paid or voided")
	ErrCycleCompleted      = errors.New("invoice cycle is already completed")
	ErrNoEligibleEmployees = errors.New("no employees with bank details to invoice")

	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceNotEditable = errors.New("invoice can no longer be edited")
	ErrInvoiceFullyPaid   = errors.New("invoice is fully paid and cannot be voided")
	ErrOutstandingBalance = errors.New("invoice has an outstanding balance and cannot be marked paid")
	ErrCommentRequired    = errors.New("a comment is required to request changes")

	ErrItemNotFound = errors.New("invoice item not found")
	ErrItemInUse    = errors.New("invoice item is referenced by existing invoices")

	ErrHistoryNotFound = errors.New("invoice history not found")
)
