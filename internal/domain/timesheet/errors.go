package timesheet

import "errors"

var (
	ErrTimesheetNotFound   = errors.New("timesheet not found")
	ErrTimesheetExists     = errors.New("a timesheet already exists for this week")
	ErrTimesheetNotDraft   = errors.New("timesheet can no longer be edited")
	ErrTimesheetNotPending = errors.New("timesheet is not awaiting review")
	ErrRejectCommentEmpty  = errors.New("a comment is required to reject a timesheet")
)
