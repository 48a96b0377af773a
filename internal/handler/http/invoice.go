package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invoice"
	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	// Cycles
	CreateCycle(w http.ResponseWriter, r *http.Request)
	ListCycles(w http.ResponseWriter, r *http.Request)
	GetCycleBreakdown(w http.ResponseWriter, r *http.Request)
	CompleteCycle(w http.ResponseWriter, r *http.Request)

	// Invoices (organization)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	ListCycleInvoices(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	EditInvoice(w http.ResponseWriter, r *http.Request)
	ApproveInvoice(w http.ResponseWriter, r *http.Request)
	ResolveChangeRequest(w http.ResponseWriter, r *http.Request)
	ReissueInvoice(w http.ResponseWriter, r *http.Request)
	MarkInvoiced(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	VoidInvoice(w http.ResponseWriter, r *http.Request)

	// Invoices (employee)
	ListMyInvoices(w http.ResponseWriter, r *http.Request)
	GetMyInvoice(w http.ResponseWriter, r *http.Request)
	SubmitInvoice(w http.ResponseWriter, r *http.Request)
	RequestInvoiceChanges(w http.ResponseWriter, r *http.Request)

	// Catalog items
	CreateItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)

	// History
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

func parsePagination(r *http.Request) (page, limit int) {
	page, limit = 1, 10
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	return page, limit
}

// ========== CYCLES ==========

func (h *invoiceHandlerImpl) CreateCycle(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invoiceService.CreateCycle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice cycle created", result)
}

func (h *invoiceHandlerImpl) ListCycles(w http.ResponseWriter, r *http.Request) {
	var filter invoice.CycleFilter
	filter.Page, filter.Limit = parsePagination(r)

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			filter.Month = &month
		}
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = &year
		}
	}

	result, err := h.invoiceService.ListCycles(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) GetCycleBreakdown(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.invoiceService.GetCycleBreakdown(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) CompleteCycle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.invoiceService.CompleteCycle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice cycle completed", result)
}

// ========== INVOICES (ORGANIZATION) ==========

func parseInvoiceFilter(r *http.Request) invoice.InvoiceFilter {
	var filter invoice.InvoiceFilter
	filter.Page, filter.Limit = parsePagination(r)

	if cycleID := r.URL.Query().Get("cycle_id"); cycleID != "" {
		filter.CycleID = &cycleID
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := invoice.Status(statusStr)
		filter.Status = &status
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	return filter
}

func (h *invoiceHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.ListInvoices(r.Context(), parseInvoiceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListCycleInvoices lists the employee invoices of one cycle.
func (h *invoiceHandlerImpl) ListCycleInvoices(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "cycleId")
	if cycleID == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	filter := parseInvoiceFilter(r)
	filter.CycleID = &cycleID

	result, err := h.invoiceService.ListInvoices(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.GetInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) EditInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req invoice.EditInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.invoiceService.EditInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) ApproveInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.ApproveInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice approved", result)
}

func (h *invoiceHandlerImpl) ResolveChangeRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.ResolveChangeRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Change request resolved", result)
}

func (h *invoiceHandlerImpl) ReissueInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.ReissueInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice reissued", result)
}

func (h *invoiceHandlerImpl) MarkInvoiced(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.MarkInvoiced(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice marked as invoiced", result)
}

func (h *invoiceHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice marked as paid", result)
}

func (h *invoiceHandlerImpl) VoidInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.VoidInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice voided", result)
}

// ========== INVOICES (EMPLOYEE) ==========

func (h *invoiceHandlerImpl) ListMyInvoices(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.ListMyInvoices(r.Context(), parseInvoiceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) GetMyInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.GetMyInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) SubmitInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.SubmitInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice submitted", result)
}

func (h *invoiceHandlerImpl) RequestInvoiceChanges(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req invoice.ChangeRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.invoiceService.RequestInvoiceChanges(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Changes requested", result)
}

// ========== CATALOG ITEMS ==========

func (h *invoiceHandlerImpl) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invoiceService.CreateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice item created", result)
}

func (h *invoiceHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.ListItems(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	var req invoice.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.invoiceService.UpdateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	if err := h.invoiceService.DeleteItem(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice item deleted successfully", nil)
}

// ========== HISTORY ==========

func (h *invoiceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	var filter invoice.HistoryFilter
	filter.Page, filter.Limit = parsePagination(r)

	result, err := h.invoiceService.GetHistory(r.Context(), id, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
