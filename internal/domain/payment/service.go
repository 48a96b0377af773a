package payment

import (
	"context"
	"io"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (RecordPaymentResponse, error)
	ListPayments(ctx context.Context, invoiceID string, filter PaymentFilter) (ListPaymentResponse, error)
	DownloadReceipt(ctx context.Context, paymentID string) (io.ReadCloser, string, error)
}
