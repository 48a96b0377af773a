package timesheet

import "context"

type TimesheetService interface {
	// Employee side
	CreateTimesheet(ctx context.Context, req CreateTimesheetRequest) (TimesheetResponse, error)
	UpdateTimesheet(ctx context.Context, req UpdateTimesheetRequest) (TimesheetResponse, error)
	SubmitTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	ListMyTimesheets(ctx context.Context, filter TimesheetFilter) (ListTimesheetResponse, error)
	GetMyTimesheet(ctx context.Context, id string) (TimesheetResponse, error)

	// Organization side
	ListTimesheets(ctx context.Context, filter TimesheetFilter) (ListTimesheetResponse, error)
	GetTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	ApproveTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	RejectTimesheet(ctx context.Context, req RejectTimesheetRequest) (TimesheetResponse, error)
}
