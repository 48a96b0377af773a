package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordPaymentRequest_Validate(t *testing.T) {
	valid := RecordPaymentRequest{Amount: decimal.NewFromFloat(100.50)}
	assert.NoError(t, valid.Validate())

	zero := RecordPaymentRequest{Amount: decimal.Zero}
	assert.Error(t, zero.Validate())

	negative := RecordPaymentRequest{Amount: decimal.NewFromInt(-50)}
	assert.Error(t, negative.Validate())
}

func TestRecordPaymentRequest_Validate_PaidAt(t *testing.T) {
	good := "2026-08-01T09:00:00Z"
	req := RecordPaymentRequest{Amount: decimal.NewFromInt(10), PaidAt: &good}
	assert.NoError(t, req.Validate())

	bad := "01/08/2026"
	req = RecordPaymentRequest{Amount: decimal.NewFromInt(10), PaidAt: &bad}
	assert.Error(t, req.Validate())
}
