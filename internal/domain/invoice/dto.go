package invoice

import (
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CYCLE DTOs ==========

type CreateCycleRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleResponse struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	Month          int              `json:"month"`
	Year           int              `json:"year"`
	Status         CycleStatus      `json:"status"`
	InvoiceCount   *int             `json:"invoice_count,omitempty"`
	TotalPayable   *decimal.Decimal `json:"total_payable,omitempty"`
	CreatedAt      string           `json:"created_at"`
}

type CreateCycleResponse struct {
	Cycle              CycleResponse       `json:"cycle"`
	GeneratedInvoices  int                 `json:"generated_invoices"`
	MissingBankDetails []MissingBankDetail `json:"missing_bank_details"`
}

type CycleBreakdownResponse struct {
	Cycle            CycleResponse   `json:"cycle"`
	StatusCounts     map[Status]int  `json:"status_counts"`
	TotalPayable     decimal.Decimal `json:"total_payable"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

type CycleFilter struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
	Page  int  `json:"page"`
	Limit int  `json:"limit"`
}

type ListCycleResponse struct {
	Data       []CycleResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// ========== EMPLOYEE INVOICE DTOs ==========

type ExtraAmountResponse struct {
	ID            string          `json:"id"`
	ExtraAmountID *string         `json:"extra_amount_id,omitempty"`
	Title         *string         `json:"title,omitempty"`
	Kind          ExtraAmountKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	IsPercent     bool            `json:"is_percent"`
}

type EmployeeInvoiceResponse struct {
	ID              string                `json:"id"`
	CycleID         string                `json:"cycle_id"`
	EmployeeID      string                `json:"employee_id"`
	EmployeeName    *string               `json:"employee_name,omitempty"`
	EmployeeEmail   *string               `json:"employee_email,omitempty"`
	CurrencyCode    *string               `json:"currency_code,omitempty"`
	Month           *int                  `json:"month,omitempty"`
	Year            *int                  `json:"year,omitempty"`
	GrossAmount     decimal.Decimal       `json:"gross_amount"`
	TotalAdditions  decimal.Decimal       `json:"total_additions"`
	TotalDeductions decimal.Decimal       `json:"total_deductions"`
	PayableAmount   decimal.Decimal       `json:"payable_amount"`
	PaidAmount      decimal.Decimal       `json:"paid_amount"`
	RemainingAmount decimal.Decimal       `json:"remaining_amount"`
	Status          Status                `json:"status"`
	Comment         *string               `json:"comment,omitempty"`
	ExtraAmounts    []ExtraAmountResponse `json:"extra_amounts,omitempty"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

type InvoiceFilter struct {
	CycleID    *string `json:"cycle_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *Status `json:"status,omitempty"`
	Search     *string `json:"search,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

type ListEmployeeInvoiceResponse struct {
	Data       []EmployeeInvoiceResponse `json:"data"`
	TotalCount int64                     `json:"total_count"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
}

// ExtraAmountInput is one line in an invoice edit. Either an extra_amount_id
// referencing a catalog item or an ad-hoc kind, never both missing.
type ExtraAmountInput struct {
	ExtraAmountID *string          `json:"extra_amount_id,omitempty"`
	Kind          *ExtraAmountKind `json:"kind,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	IsPercent     bool             `json:"is_percent"`
}

type EditInvoiceRequest struct {
	ID           string
	GrossAmount  *decimal.Decimal   `json:"gross_amount,omitempty"`
	ExtraAmounts []ExtraAmountInput `json:"extra_amounts"`
}

func (r *EditInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossAmount != nil && r.GrossAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_amount", Message: "must be non-negative"})
	}
	for _, line := range r.ExtraAmounts {
		if line.ExtraAmountID == nil && line.Kind == nil {
			errs = append(errs, validator.ValidationError{Field: "extra_amounts", Message: "each line needs an extra_amount_id or a kind"})
			break
		}
		if line.Kind != nil && *line.Kind != KindAddition && *line.Kind != KindDeduction {
			errs = append(errs, validator.ValidationError{Field: "extra_amounts", Message: "kind must be 'addition' or 'deduction'"})
			break
		}
		if line.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "extra_amounts", Message: "amounts must be non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeRequestRequest struct {
	ID      string
	Comment string `json:"comment"`
}

func (r *ChangeRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{Field: "comment", Message: "is required to request changes"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== CATALOG ITEM DTOs ==========

type CreateItemRequest struct {
	Title string          `json:"title"`
	Kind  ExtraAmountKind `json:"kind"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Kind != KindAddition && r.Kind != KindDeduction {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'addition' or 'deduction'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateItemRequest struct {
	ID    string
	Title *string          `json:"title,omitempty"`
	Kind  *ExtraAmountKind `json:"kind,omitempty"`
}

func (r *UpdateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "cannot be empty"})
	}
	if r.Kind != nil && *r.Kind != KindAddition && *r.Kind != KindDeduction {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'addition' or 'deduction'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Kind      ExtraAmountKind `json:"kind"`
	CreatedAt string          `json:"created_at"`
}

// ========== HISTORY DTOs ==========

type HistoryEntryResponse struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoice_id"`
	Action    string  `json:"action"`
	Actor     string  `json:"actor"`
	ActorRole string  `json:"actor_role"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type HistoryFilter struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type ListHistoryResponse struct {
	Data       []HistoryEntryResponse `json:"data"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}
