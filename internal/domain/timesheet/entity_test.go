package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimesheetEditable(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{StatusDraft, true},
		{StatusRejected, true},
		{StatusSubmitted, false},
		{StatusApproved, false},
	}
	for _, c := range cases {
		ts := &Timesheet{Status: c.status}
		assert.Equal(t, c.want, ts.Editable(), "status %s", c.status)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("pending").Valid())
	assert.False(t, Status("").Valid())
}
