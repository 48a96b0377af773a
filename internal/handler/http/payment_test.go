package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
)

type stubPaymentService struct {
	recorded *payment.RecordPaymentRequest
}

func (s *stubPaymentService) RecordPayment(ctx context.Context, req payment.RecordPaymentRequest) (payment.RecordPaymentResponse, error) {
	s.recorded = &req
	return payment.RecordPaymentResponse{}, nil
}

func (s *stubPaymentService) ListPayments(ctx context.Context, invoiceID string, filter payment.PaymentFilter) (payment.ListPaymentResponse, error) {
	return payment.ListPaymentResponse{}, nil
}

func (s *stubPaymentService) DownloadReceipt(ctx context.Context, paymentID string) (io.ReadCloser, string, error) {
	return io.NopCloser(strings.NewReader("")), "receipt.pdf", nil
}

func paymentTestRouter(svc payment.PaymentService) *chi.Mux {
	h := NewPaymentHandler(svc)
	r := chi.NewRouter()
	r.Post("/organization/payments/{id}", h.RecordPayment)
	return r
}

func TestRecordPayment_JSONBody(t *testing.T) {
	svc := &stubPaymentService{}
	router := paymentTestRouter(svc)

	body := `{"amount":"150.75","note":"bank transfer ref 4421"}`
	req := httptest.NewRequest(http.MethodPost, "/organization/payments/inv-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.recorded)
	assert.Equal(t, "inv-1", svc.recorded.InvoiceID)
	assert.True(t, svc.recorded.Amount.Equal(decimal.RequireFromString("150.75")))
	require.NotNil(t, svc.recorded.Note)
	assert.Equal(t, "bank transfer ref 4421", *svc.recorded.Note)
	assert.Nil(t, svc.recorded.Receipt)
}

func TestRecordPayment_JSONBodyInvalid(t *testing.T) {
	svc := &stubPaymentService{}
	router := paymentTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/organization/payments/inv-1", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.recorded)
}

func TestRecordPayment_MultipartWithReceipt(t *testing.T) {
	svc := &stubPaymentService{}
	router := paymentTestRouter(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("amount", "200"))
	part, err := mw.CreateFormFile("receipt", "receipt.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/organization/payments/inv-1", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.recorded)
	assert.Equal(t, "inv-1", svc.recorded.InvoiceID)
	assert.True(t, svc.recorded.Amount.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, svc.recorded.ReceiptHeader)
	assert.Equal(t, "receipt.pdf", svc.recorded.ReceiptHeader.Filename)
}
