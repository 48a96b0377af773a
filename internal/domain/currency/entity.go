package currency

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a platform-wide lookup row (ISO 4217 code plus display data).
// ExchangeRate is relative to USD and only used for reporting totals.
type Currency struct {
	ID           string
	Code         string
	Name         string
	Symbol       string
	ExchangeRate decimal.Decimal
	CreatedAt    time.Time
}
