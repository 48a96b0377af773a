package currency

import "errors"

var (
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrCurrencyExists   = errors.New("a currency with this code already exists")
)
