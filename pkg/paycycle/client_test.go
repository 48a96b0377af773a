package paycycle

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_GetInvoice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/organization/invoices/inv-1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"id":             "inv-1",
				"cycle_id":       "cyc-1",
				"employee_id":    "emp-1",
				"gross_amount":   "3000",
				"payable_amount": "3124.75",
				"status":         "created",
			},
		})
	}, WithSession(StaticToken("test-token")))

	inv, err := c.GetInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", inv.ID)
	assert.Equal(t, InvoiceCreated, inv.Status)
	assert.True(t, inv.PayableAmount.Equal(decimal.RequireFromString("3124.75")))
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, map[string]any{
			"success": false,
			"message": "Conflict",
			"error": map[string]any{
				"code":    "CONFLICT",
				"message": "cannot move invoice from paid to voided",
			},
		})
	})

	_, err := c.VoidInvoice(context.Background(), "inv-1")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "CONFLICT", apiErr.Code)
	assert.Equal(t, "cannot move invoice from paid to voided", apiErr.Message)
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_FieldErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    "VALIDATION_ERROR",
				"message": "Validation failed",
				"details": map[string]string{"month": "must be between 1 and 12"},
			},
		})
	})

	_, err := c.CreateCycle(context.Background(), CreateCycleInput{Month: 13, Year: 2026})
	require.Error(t, err)

	apiErr := err.(*APIError)
	assert.Equal(t, "must be between 1 and 12", apiErr.FieldErrors["month"])
}

func TestClient_UnauthorizedCallback(t *testing.T) {
	var fired bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   map[string]any{"code": "UNAUTHORIZED", "message": "Missing or invalid token"},
		})
	}, OnUnauthorized(func() { fired = true }))

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.True(t, fired, "OnUnauthorized should fire on 401")
	assert.Equal(t, http.StatusUnauthorized, err.(*APIError).Status)
}

func TestClient_ForbiddenCallback(t *testing.T) {
	var fired bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, map[string]any{
			"success": false,
			"error":   map[string]any{"code": "FORBIDDEN", "message": "Organization access required"},
		})
	}, OnForbidden(func() { fired = true }))

	_, err := c.ListCycles(context.Background(), 0, 0, 1, 10)
	require.Error(t, err)
	assert.True(t, fired)
}

func TestClient_ChangeRequestNeedsComment(t *testing.T) {
	// No server: an empty comment must never reach the network.
	c, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = c.RequestInvoiceChanges(context.Background(), "inv-1", "   ")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "is required", apiErr.FieldErrors["comment"])
}

func TestClient_PaymentAmountMustBePositive(t *testing.T) {
	c, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = c.RecordPayment(context.Background(), "inv-1", RecordPaymentInput{Amount: decimal.Zero})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "must be greater than zero", apiErr.FieldErrors["amount"])
}

func TestClient_RecordPaymentMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "150.50", r.FormValue("amount"))

		file, header, err := r.FormFile("receipt")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "receipt.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		content, _ := io.ReadAll(file)
		assert.Equal(t, "fake pdf bytes", string(content))

		writeEnvelope(w, http.StatusCreated, map[string]any{
			"success": true,
			"data": map[string]any{
				"payment":          map[string]any{"id": "pay-1", "amount": "150.50"},
				"paid_amount":      "150.50",
				"remaining_amount": "849.50",
			},
		})
	})

	res, err := c.RecordPayment(context.Background(), "inv-1", RecordPaymentInput{
		Amount:      decimal.RequireFromString("150.50"),
		ReceiptName: "receipt.pdf",
		ReceiptBody: strings.NewReader("fake pdf bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pay-1", res.Payment.ID)
	assert.True(t, res.RemainingAmount.Equal(decimal.RequireFromString("849.50")))
}

func TestClient_ListMeta(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "invite-1", "employee_id": "emp-1", "email": "a@b.cd", "status": "pending"}},
			"meta":    map[string]any{"page": 2, "limit": 10, "total_items": 23},
		})
	})

	invites, meta, err := c.ListInvitations(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.NotNil(t, meta)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(23), meta.TotalItems)
}

func TestClient_NoRedirectFollow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://elsewhere.example/steal-token", http.StatusFound)
	})

	_, err := c.Me(context.Background())
	require.Error(t, err)

	// The redirect is surfaced as an error, never followed.
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusFound, apiErr.Status)
}

func TestClient_MalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed response")
}
