package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExtraAmountResolve_Fixed(t *testing.T) {
	line := ExtraAmount{Kind: KindAddition, Amount: dec("150.50"), IsPercent: false}
	got := line.Resolve(dec("3000"))
	assert.True(t, got.Equal(dec("150.50")), "fixed lines pass through, got %s", got)
}

func TestExtraAmountResolve_Percent(t *testing.T) {
	cases := []struct {
		gross   string
		percent string
		want    string
	}{
		{"3000", "10", "300"},
		{"3000", "2.5", "75"},
		{"1234.56", "10", "123.46"}, // 123.456 rounds half up
		{"999.99", "3.33", "33.3"},  // 33.299667 rounds to 33.30
		{"0", "50", "0"},
	}
	for _, c := range cases {
		line := ExtraAmount{Kind: KindDeduction, Amount: dec(c.percent), IsPercent: true}
		got := line.Resolve(dec(c.gross))
		assert.True(t, got.Equal(dec(c.want)), "%s%% of %s = %s, want %s", c.percent, c.gross, got, c.want)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(dec("5000"), nil)
	assert.True(t, totals.Additions.IsZero())
	assert.True(t, totals.Deductions.IsZero())
	assert.True(t, totals.Payable.Equal(dec("5000")))
}

func TestComputeTotals_Mixed(t *testing.T) {
	gross := dec("3000")

	// 500 bonus, 10% deduction (300), 120.25 fixed deduction, 1.5% addition (45).
	lines := []ExtraAmount{
		{Kind: KindAddition, Amount: dec("500")},
		{Kind: KindDeduction, Amount: dec("10"), IsPercent: true},
		{Kind: KindDeduction, Amount: dec("120.25")},
		{Kind: KindAddition, Amount: dec("1.5"), IsPercent: true},
	}

	totals := ComputeTotals(gross, lines)
	assert.True(t, totals.Additions.Equal(dec("545")), "additions = %s", totals.Additions)
	assert.True(t, totals.Deductions.Equal(dec("420.25")), "deductions = %s", totals.Deductions)
	// 3000 + 545 - 420.25
	assert.True(t, totals.Payable.Equal(dec("3124.75")), "payable = %s", totals.Payable)
}

func TestComputeTotals_DeductionsStoredPositive(t *testing.T) {
	// A deduction that somehow carries a negative sign still subtracts.
	lines := []ExtraAmount{
		{Kind: KindDeduction, Amount: dec("-200")},
	}
	totals := ComputeTotals(dec("1000"), lines)
	assert.True(t, totals.Deductions.Equal(dec("200")))
	assert.True(t, totals.Payable.Equal(dec("800")))
}

func TestComputeTotals_PercentResolvesAgainstGrossOnly(t *testing.T) {
	// Percent lines resolve against the gross amount, never against a
	// running total that includes other lines.
	gross := dec("2000")
	lines := []ExtraAmount{
		{Kind: KindAddition, Amount: dec("1000")},
		{Kind: KindDeduction, Amount: dec("10"), IsPercent: true},
	}
	totals := ComputeTotals(gross, lines)
	assert.True(t, totals.Deductions.Equal(dec("200")), "10%% of 2000 gross, got %s", totals.Deductions)
}

func TestComputeTotals_NegativePayableAllowed(t *testing.T) {
	lines := []ExtraAmount{
		{Kind: KindDeduction, Amount: dec("1500")},
	}
	totals := ComputeTotals(dec("1000"), lines)
	assert.True(t, totals.Payable.Equal(dec("-500")))
}
