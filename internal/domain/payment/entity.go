package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one append-only record against an employee invoice. Rows are
// never updated or deleted; corrections happen by voiding the invoice and
// reissuing it.
type Payment struct {
	ID             string
	InvoiceID      string
	OrganizationID string
	Amount         decimal.Decimal
	PaidAt         time.Time
	Note           *string
	ReceiptPath    *string
	RecordedBy     string
	CreatedAt      time.Time
}
