package timesheet

import (
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EntryInput struct {
	Date            string          `json:"date"` // YYYY-MM-DD
	Hours           decimal.Decimal `json:"hours"`
	TaskTitle       string          `json:"task_title"`
	TaskDescription *string         `json:"task_description,omitempty"`
}

type CreateTimesheetRequest struct {
	WeekStart string       `json:"week_start"` // YYYY-MM-DD, a Monday
	Entries   []EntryInput `json:"entries"`
}

var maxDailyHours = decimal.NewFromInt(24)

func validateEntries(entries []EntryInput) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for _, entry := range entries {
		if _, ok := validator.IsValidDate(entry.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "each entry date must be YYYY-MM-DD"})
			break
		}
		if entry.Hours.IsNegative() || entry.Hours.GreaterThan(maxDailyHours) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "hours must be between 0 and 24"})
			break
		}
		if validator.IsEmpty(entry.TaskTitle) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "each entry needs a task_title"})
			break
		}
	}

	return errs
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "week_start", Message: "week_start must be YYYY-MM-DD"})
	}
	errs = append(errs, validateEntries(r.Entries)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimesheetRequest struct {
	ID      string
	Entries []EntryInput `json:"entries"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	if errs := validateEntries(r.Entries); len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectTimesheetRequest struct {
	ID      string
	Comment string `json:"comment"`
}

func (r *RejectTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{Field: "comment", Message: "is required to reject a timesheet"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Hours           decimal.Decimal `json:"hours"`
	TaskTitle       string          `json:"task_title"`
	TaskDescription *string         `json:"task_description,omitempty"`
}

type TimesheetResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	EmployeeName  *string          `json:"employee_name,omitempty"`
	WeekStart     string           `json:"week_start"`
	Status        Status           `json:"status"`
	ReviewComment *string          `json:"review_comment,omitempty"`
	TotalHours    *decimal.Decimal `json:"total_hours,omitempty"`
	Entries       []EntryResponse  `json:"entries,omitempty"`
	CreatedAt     string           `json:"created_at"`
}

type TimesheetFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *Status `json:"status,omitempty"`
	Search     *string `json:"search,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

type ListTimesheetResponse struct {
	Data       []TimesheetResponse `json:"data"`
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}
