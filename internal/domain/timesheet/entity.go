package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Timesheet is one employee week. Entries are replaced wholesale while the
// sheet is a draft or rejected; submitted and approved sheets are frozen.
type Timesheet struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	WeekStart      time.Time
	Status         Status
	ReviewComment  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	TotalHours   *decimal.Decimal
}

// Entry is one day of work within a timesheet.
type Entry struct {
	ID              string
	TimesheetID     string
	Date            time.Time
	Hours           decimal.Decimal
	TaskTitle       string
	TaskDescription *string
	CreatedAt       time.Time
}

// Editable reports whether entries may still be changed.
func (t *Timesheet) Editable() bool {
	return t.Status == StatusDraft || t.Status == StatusRejected
}
