package invoice

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Resolve returns the monetary value of the line against the given gross
// amount. Percent lines are resolved at application time and rounded to two
// decimal places; fixed lines pass through unchanged.
func (e ExtraAmount) Resolve(gross decimal.Decimal) decimal.Decimal {
	if e.IsPercent {
		return gross.Mul(e.Amount).Div(oneHundred).Round(2)
	}
	return e.Amount
}

// Totals holds the aggregates recomputed whenever line items change.
type Totals struct {
	Additions  decimal.Decimal
	Deductions decimal.Decimal
	Payable    decimal.Decimal
}

// ComputeTotals applies every line to the gross amount. Deductions are
// stored positive and subtracted here; additions add. payable =
// gross + additions - deductions.
func ComputeTotals(gross decimal.Decimal, lines []ExtraAmount) Totals {
	additions := decimal.Zero
	deductions := decimal.Zero

	for _, line := range lines {
		value := line.Resolve(gross)
		if line.Kind == KindDeduction {
			deductions = deductions.Add(value.Abs())
		} else {
			additions = additions.Add(value)
		}
	}

	return Totals{
		Additions:  additions,
		Deductions: deductions,
		Payable:    gross.Add(additions).Sub(deductions),
	}
}
