package payment

import (
	"mime/multipart"

	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	InvoiceID string
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    *string         `json:"paid_at,omitempty"` // RFC3339, defaults to now
	Note      *string         `json:"note,omitempty"`

	// Optional multipart receipt, not part of the JSON body.
	Receipt       multipart.File        `json:"-"`
	ReceiptHeader *multipart.FileHeader `json:"-"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsPositiveAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if r.PaidAt != nil {
		if _, ok := validator.IsValidDateTime(*r.PaidAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "paid_at", Message: "must be a valid RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID         string          `json:"id"`
	InvoiceID  string          `json:"invoice_id"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     string          `json:"paid_at"`
	Note       *string         `json:"note,omitempty"`
	ReceiptURL *string         `json:"receipt_url,omitempty"`
	RecordedBy string          `json:"recorded_by"`
	CreatedAt  string          `json:"created_at"`
}

// RecordPaymentResponse returns the new payment plus the invoice totals the
// caller needs to refresh its view without a second request.
type RecordPaymentResponse struct {
	Payment         PaymentResponse `json:"payment"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

type PaymentFilter struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type ListPaymentResponse struct {
	Data       []PaymentResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
