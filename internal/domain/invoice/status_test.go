package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from Status
		to   Status
	}{
		{StatusCreated, StatusSubmitted},
		{StatusCreated, StatusVoided},
		{StatusSubmitted, StatusApproved},
		{StatusSubmitted, StatusChangeRequested},
		{StatusSubmitted, StatusVoided},
		{StatusApproved, StatusInvoiced},
		{StatusApproved, StatusChangeRequested},
		{StatusApproved, StatusVoided},
		{StatusChangeRequested, StatusSubmitted},
		{StatusChangeRequested, StatusApproved},
		{StatusChangeRequested, StatusCreated},
		{StatusChangeRequested, StatusVoided},
		{StatusInvoiced, StatusPaid},
		{StatusInvoiced, StatusVoided},
	}
	for _, c := range allowed {
		assert.True(t, CanTransition(c.from, c.to), "expected %s -> %s to be allowed", c.from, c.to)
	}

	denied := []struct {
		from Status
		to   Status
	}{
		{StatusCreated, StatusApproved},
		{StatusCreated, StatusInvoiced},
		{StatusCreated, StatusPaid},
		{StatusSubmitted, StatusInvoiced},
		{StatusSubmitted, StatusPaid},
		{StatusSubmitted, StatusCreated},
		{StatusApproved, StatusSubmitted},
		{StatusApproved, StatusPaid},
		{StatusChangeRequested, StatusInvoiced},
		{StatusChangeRequested, StatusPaid},
		{StatusInvoiced, StatusApproved},
		{StatusInvoiced, StatusChangeRequested},
		{StatusPaid, StatusVoided},
		{StatusPaid, StatusInvoiced},
		{StatusVoided, StatusCreated},
		{StatusVoided, StatusSubmitted},
	}
	for _, c := range denied {
		assert.False(t, CanTransition(c.from, c.to), "expected %s -> %s to be rejected", c.from, c.to)
	}
}

func TestCanTransition_SelfAndUnknown(t *testing.T) {
	for _, s := range []Status{StatusCreated, StatusSubmitted, StatusApproved, StatusChangeRequested, StatusInvoiced, StatusPaid, StatusVoided} {
		assert.False(t, CanTransition(s, s), "self transition %s must be rejected", s)
	}
	assert.False(t, CanTransition(Status("bogus"), StatusSubmitted))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusPaid))
	assert.True(t, IsTerminal(StatusVoided))

	for _, s := range []Status{StatusCreated, StatusSubmitted, StatusApproved, StatusChangeRequested, StatusInvoiced} {
		assert.False(t, IsTerminal(s), "%s should not be terminal", s)
	}
}

func TestEditable(t *testing.T) {
	assert.True(t, Editable(StatusCreated))
	assert.True(t, Editable(StatusChangeRequested))

	for _, s := range []Status{StatusSubmitted, StatusApproved, StatusInvoiced, StatusPaid, StatusVoided} {
		assert.False(t, Editable(s), "%s should not be editable", s)
	}
}

func TestTransitionError_Message(t *testing.T) {
	err := &TransitionError{From: StatusCreated, To: StatusApproved}
	assert.Equal(t, "cannot move invoice from created to approved", err.Error())

	terminal := &TransitionError{From: StatusPaid, To: StatusVoided}
	assert.Equal(t, "invoice is paid; no further changes are permitted", terminal.Error())

	voided := &TransitionError{From: StatusVoided, To: StatusSubmitted}
	assert.Equal(t, "invoice is voided; no further changes are permitted", voided.Error())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusCreated, StatusSubmitted, StatusApproved, StatusChangeRequested, StatusInvoiced, StatusPaid, StatusVoided} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("pending").Valid())
	assert.False(t, Status("").Valid())
}
