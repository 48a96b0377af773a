package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invoice"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/timesheet"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
)

func handle(t *testing.T, err error) (int, Response) {
	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
	}

	code, body := handle(t, errs)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "must be between 1 and 12", body.Error.Details["month"])
}

func TestHandleError_TransitionError(t *testing.T) {
	err := &invoice.TransitionError{From: invoice.StatusCreated, To: invoice.StatusPaid}

	code, body := handle(t, err)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "cannot move invoice from created to paid", body.Error.Message)
}

func TestHandleError_WrappedTransitionError(t *testing.T) {
	err := fmt.Errorf("approve invoice: %w", &invoice.TransitionError{From: invoice.StatusPaid, To: invoice.StatusVoided})

	code, body := handle(t, err)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "invoice is paid; no further changes are permitted", body.Error.Message)
}

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{invoice.ErrCycleNotFound, http.StatusNotFound},
		{invoice.ErrCycleExists, http.StatusConflict},
		{invoice.ErrCycleNotCompletable, http.StatusConflict},
		{invoice.ErrNoEligibleEmployees, http.StatusUnprocessableEntity},
		{invoice.ErrInvoiceNotFound, http.StatusNotFound},
		{invoice.ErrInvoiceNotEditable, http.StatusConflict},
		{invoice.ErrInvoiceFullyPaid, http.StatusConflict},
		{invoice.ErrOutstandingBalance, http.StatusConflict},
		{invoice.ErrCommentRequired, http.StatusBadRequest},
		{invoice.ErrItemInUse, http.StatusConflict},
		{payment.ErrExceedsRemaining, http.StatusUnprocessableEntity},
		{payment.ErrInvoiceNotPayable, http.StatusConflict},
		{payment.ErrReceiptNotFound, http.StatusNotFound},
		{payment.ErrReceiptTooLarge, http.StatusBadRequest},
		{timesheet.ErrTimesheetExists, http.StatusConflict},
		{timesheet.ErrTimesheetNotDraft, http.StatusConflict},
		{timesheet.ErrTimesheetNotPending, http.StatusConflict},
	}

	for _, c := range cases {
		code, body := handle(t, c.err)
		assert.Equal(t, c.want, code, "error %v", c.err)
		assert.False(t, body.Success)
	}
}

func TestHandleError_WrappedDomainError(t *testing.T) {
	err := fmt.Errorf("load invoice: %w", invoice.ErrInvoiceNotFound)

	code, _ := handle(t, err)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHandleError_UnknownError(t *testing.T) {
	code, body := handle(t, errors.New("pgx: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	// Internal details never leak to the client.
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
}
