package invoice

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
)

func TestCreateCycleRequest_Validate(t *testing.T) {
	valid := CreateCycleRequest{Month: 6, Year: 2026}
	assert.NoError(t, valid.Validate())

	badMonth := CreateCycleRequest{Month: 13, Year: 2026}
	err := badMonth.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "month", errs[0].Field)

	badYear := CreateCycleRequest{Month: 1, Year: 2019}
	require.Error(t, badYear.Validate())

	bothBad := CreateCycleRequest{Month: 0, Year: 0}
	err = bothBad.Validate()
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 2)
}

func TestEditInvoiceRequest_Validate(t *testing.T) {
	kind := KindAddition
	itemID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

	valid := EditInvoiceRequest{
		ExtraAmounts: []ExtraAmountInput{
			{Kind: &kind, Amount: decimal.NewFromInt(100)},
			{ExtraAmountID: &itemID, Amount: decimal.NewFromInt(50)},
		},
	}
	assert.NoError(t, valid.Validate())

	// A line with neither a catalog reference nor a kind is ambiguous.
	orphan := EditInvoiceRequest{
		ExtraAmounts: []ExtraAmountInput{{Amount: decimal.NewFromInt(100)}},
	}
	assert.Error(t, orphan.Validate())

	badKind := ExtraAmountKind("refund")
	invalidKind := EditInvoiceRequest{
		ExtraAmounts: []ExtraAmountInput{{Kind: &badKind, Amount: decimal.NewFromInt(100)}},
	}
	assert.Error(t, invalidKind.Validate())

	negative := EditInvoiceRequest{
		ExtraAmounts: []ExtraAmountInput{{Kind: &kind, Amount: decimal.NewFromInt(-100)}},
	}
	assert.Error(t, negative.Validate())

	negativeGross := decimal.NewFromInt(-1)
	badGross := EditInvoiceRequest{GrossAmount: &negativeGross}
	assert.Error(t, badGross.Validate())

	empty := EditInvoiceRequest{}
	assert.NoError(t, empty.Validate(), "clearing every line is a valid edit")
}

func TestChangeRequestRequest_Validate(t *testing.T) {
	valid := ChangeRequestRequest{Comment: "hours look wrong for week 2"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&ChangeRequestRequest{Comment: ""}).Validate())
	assert.Error(t, (&ChangeRequestRequest{Comment: "   "}).Validate())
}

func TestCreateItemRequest_Validate(t *testing.T) {
	valid := CreateItemRequest{Title: "Health insurance", Kind: KindDeduction}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&CreateItemRequest{Title: "", Kind: KindAddition}).Validate())
	assert.Error(t, (&CreateItemRequest{Title: "Bonus", Kind: "other"}).Validate())
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	title := "Transport allowance"
	kind := KindAddition
	valid := UpdateItemRequest{ID: "some-id", Title: &title, Kind: &kind}
	assert.NoError(t, valid.Validate())

	// Patch semantics: nil fields are left untouched.
	assert.NoError(t, (&UpdateItemRequest{ID: "some-id"}).Validate())

	emptyTitle := " "
	assert.Error(t, (&UpdateItemRequest{ID: "some-id", Title: &emptyTitle}).Validate())

	badKind := ExtraAmountKind("bonus")
	assert.Error(t, (&UpdateItemRequest{ID: "some-id", Kind: &badKind}).Validate())
}
