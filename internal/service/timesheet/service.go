package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/timesheet"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	db            *database.DB
	timesheetRepo timesheet.TimesheetRepository
}

func NewTimesheetService(db *database.DB, timesheetRepo timesheet.TimesheetRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:            db,
		timesheetRepo: timesheetRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (organizationID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, _ = claims["organization_id"].(string)
	employeeID, _ = claims["employee_id"].(string)

	return organizationID, employeeID, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// ========== EMPLOYEE ==========

func (s *TimesheetServiceImpl) CreateTimesheet(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	organizationID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if employeeID == "" {
		return timesheet.TimesheetResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	weekStart, _ := validator.IsValidDate(req.WeekStart)

	if _, err := s.timesheetRepo.GetByWeek(ctx, employeeID, weekStart); err == nil {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetExists
	} else if !errors.Is(err, timesheet.ErrTimesheetNotFound) {
		return timesheet.TimesheetResponse{}, err
	}

	entries, err := mapEntries(req.Entries)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.timesheetRepo.Create(ctx, timesheet.Timesheet{
		EmployeeID:     employeeID,
		OrganizationID: organizationID,
		WeekStart:      weekStart,
		Status:         timesheet.StatusDraft,
	}, entries)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.buildResponse(ctx, ts)
}

func (s *TimesheetServiceImpl) UpdateTimesheet(ctx context.Context, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	_, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.timesheetRepo.GetForEmployee(ctx, req.ID, employeeID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !ts.Editable() {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotDraft
	}

	entries, err := mapEntries(req.Entries)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if err := s.timesheetRepo.ReplaceEntries(ctx, ts.ID, entries); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	// A rejected sheet returns to draft once reworked.
	if ts.Status == timesheet.StatusRejected {
		if err := s.timesheetRepo.UpdateStatus(ctx, ts.ID, timesheet.StatusDraft, nil); err != nil {
			return timesheet.TimesheetResponse{}, err
		}
		ts.Status = timesheet.StatusDraft
		ts.ReviewComment = nil
	}

	return s.buildResponse(ctx, ts)
}

func (s *TimesheetServiceImpl) SubmitTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	_, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.timesheetRepo.GetForEmployee(ctx, id, employeeID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !ts.Editable() {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotDraft
	}

	if err := s.timesheetRepo.UpdateStatus(ctx, ts.ID, timesheet.StatusSubmitted, nil); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	ts.Status = timesheet.StatusSubmitted
	ts.ReviewComment = nil

	return s.buildResponse(ctx, ts)
}

func (s *TimesheetServiceImpl) ListMyTimesheets(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.ListTimesheetResponse, error) {
	_, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.ListTimesheetResponse{}, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	sheets, total, err := s.timesheetRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return timesheet.ListTimesheetResponse{}, err
	}

	return mapList(sheets, total, filter), nil
}

func (s *TimesheetServiceImpl) GetMyTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	_, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.timesheetRepo.GetForEmployee(ctx, id, employeeID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.buildResponse(ctx, ts)
}

// ========== ORGANIZATION ==========

func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.ListTimesheetResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.ListTimesheetResponse{}, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	sheets, total, err := s.timesheetRepo.List(ctx, organizationID, filter)
	if err != nil {
		return timesheet.ListTimesheetResponse{}, err
	}

	return mapList(sheets, total, filter), nil
}

func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.timesheetRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.buildResponse(ctx, ts)
}

func (s *TimesheetServiceImpl) ApproveTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	return s.review(ctx, id, timesheet.StatusApproved, nil)
}

func (s *TimesheetServiceImpl) RejectTimesheet(ctx context.Context, req timesheet.RejectTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return s.review(ctx, req.ID, timesheet.StatusRejected, &req.Comment)
}

func (s *TimesheetServiceImpl) review(ctx context.Context, id string, status timesheet.Status, comment *string) (timesheet.TimesheetResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.timesheetRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if ts.Status != timesheet.StatusSubmitted {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotPending
	}

	if err := s.timesheetRepo.UpdateStatus(ctx, ts.ID, status, comment); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	ts.Status = status
	ts.ReviewComment = comment

	return s.buildResponse(ctx, ts)
}

// ========== MAPPERS ==========

func mapEntries(inputs []timesheet.EntryInput) ([]timesheet.Entry, error) {
	entries := make([]timesheet.Entry, 0, len(inputs))
	for _, in := range inputs {
		date, ok := validator.IsValidDate(in.Date)
		if !ok {
			return nil, fmt.Errorf("invalid entry date: %s", in.Date)
		}
		entries = append(entries, timesheet.Entry{
			Date:            date,
			Hours:           in.Hours,
			TaskTitle:       in.TaskTitle,
			TaskDescription: in.TaskDescription,
		})
	}
	return entries, nil
}

func (s *TimesheetServiceImpl) buildResponse(ctx context.Context, ts timesheet.Timesheet) (timesheet.TimesheetResponse, error) {
	entries, err := s.timesheetRepo.GetEntries(ctx, ts.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	res := mapToResponse(ts)
	for _, entry := range entries {
		res.Entries = append(res.Entries, timesheet.EntryResponse{
			ID:              entry.ID,
			Date:            entry.Date.Format("2006-01-02"),
			Hours:           entry.Hours,
			TaskTitle:       entry.TaskTitle,
			TaskDescription: entry.TaskDescription,
		})
	}

	return res, nil
}

func mapToResponse(ts timesheet.Timesheet) timesheet.TimesheetResponse {
	return timesheet.TimesheetResponse{
		ID:            ts.ID,
		EmployeeID:    ts.EmployeeID,
		EmployeeName:  ts.EmployeeName,
		WeekStart:     ts.WeekStart.Format("2006-01-02"),
		Status:        ts.Status,
		ReviewComment: ts.ReviewComment,
		TotalHours:    ts.TotalHours,
		CreatedAt:     ts.CreatedAt.Format(time.RFC3339),
	}
}

func mapList(sheets []timesheet.Timesheet, total int64, filter timesheet.TimesheetFilter) timesheet.ListTimesheetResponse {
	data := make([]timesheet.TimesheetResponse, 0, len(sheets))
	for _, ts := range sheets {
		data = append(data, mapToResponse(ts))
	}
	return timesheet.ListTimesheetResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
}
