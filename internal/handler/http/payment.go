package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/response"
)

const maxPaymentFormSize = 12 << 20

type PaymentHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	DownloadReceipt(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

// RecordPayment accepts a plain JSON body, or multipart form data when a
// receipt rides along with the payment fields.
func (h *paymentHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req payment.RecordPaymentRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	} else {
		if err := r.ParseMultipartForm(maxPaymentFormSize); err != nil {
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}

		amount, err := decimal.NewFromString(r.FormValue("amount"))
		if err != nil {
			response.BadRequest(w, "Invalid amount", nil)
			return
		}
		req.Amount = amount

		if paidAt := r.FormValue("paid_at"); paidAt != "" {
			req.PaidAt = &paidAt
		}
		if note := r.FormValue("note"); note != "" {
			req.Note = &note
		}

		if file, header, err := r.FormFile("receipt"); err == nil {
			defer file.Close()
			req.Receipt = file
			req.ReceiptHeader = header
		}
	}
	req.InvoiceID = invoiceID

	result, err := h.paymentService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded", result)
}

func (h *paymentHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	var filter payment.PaymentFilter
	filter.Page, filter.Limit = parsePagination(r)

	result, err := h.paymentService.ListPayments(r.Context(), invoiceID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *paymentHandlerImpl) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	reader, filename, err := h.paymentService.DownloadReceipt(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, reader); err != nil {
		return
	}
}
