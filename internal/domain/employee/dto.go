package employee

import (
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   *string         `json:"position,omitempty"`
	CurrencyID string          `json:"currency_id"`
	RateType   RateType        `json:"rate_type"`
	Rate       decimal.Decimal `json:"rate"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if validator.IsEmpty(r.CurrencyID) {
		errs = append(errs, validator.ValidationError{Field: "currency_id", Message: "currency_id is required"})
	}
	if r.RateType != RateMonthly && r.RateType != RateHourly {
		errs = append(errs, validator.ValidationError{Field: "rate_type", Message: "rate_type must be 'monthly' or 'hourly'"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "rate must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	Name       *string           `json:"name,omitempty"`
	Position   *string           `json:"position,omitempty"`
	Status     *EmploymentStatus `json:"status,omitempty"`
	CurrencyID *string           `json:"currency_id,omitempty"`
	RateType   *RateType         `json:"rate_type,omitempty"`
	Rate       *decimal.Decimal  `json:"rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Status != nil && *r.Status != StatusActive && *r.Status != StatusInactive {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be 'active' or 'inactive'"})
	}
	if r.RateType != nil && *r.RateType != RateMonthly && *r.RateType != RateHourly {
		errs = append(errs, validator.ValidationError{Field: "rate_type", Message: "rate_type must be 'monthly' or 'hourly'"})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "rate must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertBankDetailRequest struct {
	EmployeeID    string
	BankName      string  `json:"bank_name"`
	AccountName   string  `json:"account_name"`
	AccountNumber string  `json:"account_number"`
	IBAN          *string `json:"iban,omitempty"`
	SwiftCode     *string `json:"swift_code,omitempty"`
}

func (r *UpsertBankDetailRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BankName) {
		errs = append(errs, validator.ValidationError{Field: "bank_name", Message: "bank_name is required"})
	}
	if validator.IsEmpty(r.AccountName) {
		errs = append(errs, validator.ValidationError{Field: "account_name", Message: "account_name is required"})
	}
	if validator.IsEmpty(r.AccountNumber) {
		errs = append(errs, validator.ValidationError{Field: "account_number", Message: "account_number is required"})
	} else if !validator.IsNumeric(r.AccountNumber) {
		errs = append(errs, validator.ValidationError{Field: "account_number", Message: "account_number must contain only digits"})
	}
	if r.IBAN != nil && !validator.IsValidIBAN(*r.IBAN) {
		errs = append(errs, validator.ValidationError{Field: "iban", Message: "iban is not a valid IBAN"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BankDetailResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	BankName      string  `json:"bank_name"`
	AccountName   string  `json:"account_name"`
	AccountNumber string  `json:"account_number"`
	IBAN          *string `json:"iban,omitempty"`
	SwiftCode     *string `json:"swift_code,omitempty"`
}

type EmployeeResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Position      *string             `json:"position,omitempty"`
	Status        EmploymentStatus    `json:"status"`
	CurrencyID    string              `json:"currency_id"`
	CurrencyCode  *string             `json:"currency_code,omitempty"`
	RateType      RateType            `json:"rate_type"`
	Rate          decimal.Decimal     `json:"rate"`
	HasBankDetail bool                `json:"has_bank_detail"`
	BankDetail    *BankDetailResponse `json:"bank_detail,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

type EmployeeFilter struct {
	Search *string           `json:"search,omitempty"`
	Status *EmploymentStatus `json:"status,omitempty"`
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
