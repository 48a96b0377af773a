package currency

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/currency"
)

type CurrencyServiceImpl struct {
	currencyRepo currency.CurrencyRepository
}

func NewCurrencyService(currencyRepo currency.CurrencyRepository) currency.CurrencyService {
	return &CurrencyServiceImpl{currencyRepo: currencyRepo}
}

func (s *CurrencyServiceImpl) ListCurrencies(ctx context.Context) ([]currency.CurrencyResponse, error) {
	currencies, err := s.currencyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]currency.CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		res = append(res, mapToResponse(c))
	}
	return res, nil
}

func (s *CurrencyServiceImpl) CreateCurrency(ctx context.Context, req currency.CreateCurrencyRequest) (currency.CurrencyResponse, error) {
	if err := req.Validate(); err != nil {
		return currency.CurrencyResponse{}, err
	}

	rate := decimal.NewFromInt(1)
	if req.ExchangeRate != nil {
		rate = *req.ExchangeRate
	}

	c, err := s.currencyRepo.Create(ctx, currency.Currency{
		Code:         strings.ToUpper(req.Code),
		Name:         req.Name,
		Symbol:       req.Symbol,
		ExchangeRate: rate,
	})
	if err != nil {
		return currency.CurrencyResponse{}, err
	}

	return mapToResponse(c), nil
}

func mapToResponse(c currency.Currency) currency.CurrencyResponse {
	return currency.CurrencyResponse{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		Symbol:       c.Symbol,
		ExchangeRate: c.ExchangeRate,
	}
}
