package payment

import "errors"

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrExceedsRemaining   = errors.New("payment exceeds the remaining invoice amount")
	ErrInvoiceNotPayable  = errors.New("payments can only be recorded on invoiced invoices")
	ErrReceiptNotFound    = errors.New("payment receipt not found")
	ErrReceiptTooLarge    = errors.New("receipt file exceeds the size limit")
	ErrUnsupportedReceipt = errors.New("receipt must be a PDF or an image")
)
