package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentRepository is append-only: there is no update or delete.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p Payment) (Payment, error)
	GetPaymentByID(ctx context.Context, id string, organizationID string) (Payment, error)
	ListPaymentsByInvoice(ctx context.Context, invoiceID string, filter PaymentFilter) ([]Payment, int64, error)
	SumPaymentsByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error)
}
