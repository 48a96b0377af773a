package timesheet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TimesheetRepository interface {
	Create(ctx context.Context, ts Timesheet, entries []Entry) (Timesheet, error)
	GetByID(ctx context.Context, id string, organizationID string) (Timesheet, error)
	GetForEmployee(ctx context.Context, id string, employeeID string) (Timesheet, error)
	GetByWeek(ctx context.Context, employeeID string, weekStart time.Time) (Timesheet, error)
	List(ctx context.Context, organizationID string, filter TimesheetFilter) ([]Timesheet, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, filter TimesheetFilter) ([]Timesheet, int64, error)
	ReplaceEntries(ctx context.Context, timesheetID string, entries []Entry) error
	GetEntries(ctx context.Context, timesheetID string) ([]Entry, error)
	UpdateStatus(ctx context.Context, id string, status Status, comment *string) error

	// SumApprovedHours totals approved entries for an employee within
	// [from, to), used to derive the gross amount for hourly employees.
	SumApprovedHours(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error)
}
