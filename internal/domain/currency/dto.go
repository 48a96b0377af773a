package currency

import (
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateCurrencyRequest struct {
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Symbol       string           `json:"symbol"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate,omitempty"`
}

func (r *CreateCurrencyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCurrencyCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be a 3-letter ISO 4217 code"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Symbol) {
		errs = append(errs, validator.ValidationError{Field: "symbol", Message: "symbol is required"})
	}
	if r.ExchangeRate != nil && !validator.IsPositiveAmount(*r.ExchangeRate) {
		errs = append(errs, validator.ValidationError{Field: "exchange_rate", Message: "exchange_rate must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CurrencyResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}
