package paycycle

import (
	"context"
	"strconv"
	"strings"
)

// TimesheetFilter narrows timesheet list calls.
type TimesheetFilter struct {
	EmployeeID string
	Status     string
	Search     string
	Page       int
	Limit      int
}

func (f TimesheetFilter) toQuery() string {
	q := map[string]string{
		"employee_id": f.EmployeeID,
		"status":      f.Status,
		"search":      f.Search,
	}
	if f.Page > 0 {
		q["page"] = strconv.Itoa(f.Page)
	}
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	return query(q)
}

// ========== EMPLOYEE SIDE ==========

func (c *Client) CreateTimesheet(ctx context.Context, in CreateTimesheetInput) (Timesheet, error) {
	var out Timesheet
	err := c.post(ctx, "/employee/timesheets", in, &out)
	return out, err
}

func (c *Client) ListMyTimesheets(ctx context.Context, f TimesheetFilter) (TimesheetList, error) {
	var out TimesheetList
	_, err := c.get(ctx, "/employee/timesheets"+f.toQuery(), &out)
	return out, err
}

func (c *Client) GetMyTimesheet(ctx context.Context, timesheetID string) (Timesheet, error) {
	var out Timesheet
	_, err := c.get(ctx, "/employee/timesheets/"+timesheetID, &out)
	return out, err
}

func (c *Client) UpdateTimesheet(ctx context.Context, timesheetID string, entries []TimesheetEntry) (Timesheet, error) {
	body := map[string]any{"entries": entries}
	var out Timesheet
	err := c.put(ctx, "/employee/timesheets/"+timesheetID, body, &out)
	return out, err
}

func (c *Client) SubmitTimesheet(ctx context.Context, timesheetID string) (Timesheet, error) {
	var out Timesheet
	err := c.put(ctx, "/employee/timesheets/"+timesheetID+"/submit", nil, &out)
	return out, err
}

// ========== ORGANIZATION SIDE ==========

func (c *Client) ListTimesheets(ctx context.Context, f TimesheetFilter) (TimesheetList, error) {
	var out TimesheetList
	_, err := c.get(ctx, "/organization/timesheets"+f.toQuery(), &out)
	return out, err
}

func (c *Client) GetTimesheet(ctx context.Context, timesheetID string) (Timesheet, error) {
	var out Timesheet
	_, err := c.get(ctx, "/organization/timesheets/"+timesheetID, &out)
	return out, err
}

func (c *Client) ApproveTimesheet(ctx context.Context, timesheetID string) (Timesheet, error) {
	var out Timesheet
	err := c.put(ctx, "/organization/timesheets/"+timesheetID+"/approve", nil, &out)
	return out, err
}

// RejectTimesheet requires a non-empty comment; the check runs before any
// network call.
func (c *Client) RejectTimesheet(ctx context.Context, timesheetID, comment string) (Timesheet, error) {
	if strings.TrimSpace(comment) == "" {
		return Timesheet{}, errComment("comment")
	}

	body := map[string]string{"comment": comment}
	var out Timesheet
	err := c.put(ctx, "/organization/timesheets/"+timesheetID+"/reject", body, &out)
	return out, err
}
