package currency

import "context"

type CurrencyService interface {
	ListCurrencies(ctx context.Context) ([]CurrencyResponse, error)

	// Admin
	CreateCurrency(ctx context.Context, req CreateCurrencyRequest) (CurrencyResponse, error)
}
