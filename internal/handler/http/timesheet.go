package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/timesheet"
	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	// Employee side
	CreateTimesheet(w http.ResponseWriter, r *http.Request)
	UpdateTimesheet(w http.ResponseWriter, r *http.Request)
	SubmitTimesheet(w http.ResponseWriter, r *http.Request)
	ListMyTimesheets(w http.ResponseWriter, r *http.Request)
	GetMyTimesheet(w http.ResponseWriter, r *http.Request)

	// Organization side
	ListTimesheets(w http.ResponseWriter, r *http.Request)
	GetTimesheet(w http.ResponseWriter, r *http.Request)
	ApproveTimesheet(w http.ResponseWriter, r *http.Request)
	RejectTimesheet(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func parseTimesheetFilter(r *http.Request) timesheet.TimesheetFilter {
	var filter timesheet.TimesheetFilter
	filter.Page, filter.Limit = parsePagination(r)

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := timesheet.Status(statusStr)
		filter.Status = &status
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	return filter
}

// ========== EMPLOYEE ==========

func (h *timesheetHandlerImpl) CreateTimesheet(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timesheetService.CreateTimesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created", result)
}

func (h *timesheetHandlerImpl) UpdateTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	var req timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.timesheetService.UpdateTimesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) SubmitTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	result, err := h.timesheetService.SubmitTimesheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted", result)
}

func (h *timesheetHandlerImpl) ListMyTimesheets(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ListMyTimesheets(r.Context(), parseTimesheetFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) GetMyTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	result, err := h.timesheetService.GetMyTimesheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== ORGANIZATION ==========

func (h *timesheetHandlerImpl) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ListTimesheets(r.Context(), parseTimesheetFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	result, err := h.timesheetService.GetTimesheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) ApproveTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	result, err := h.timesheetService.ApproveTimesheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved", result)
}

func (h *timesheetHandlerImpl) RejectTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	var req timesheet.RejectTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.timesheetService.RejectTimesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", result)
}
