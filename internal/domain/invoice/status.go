package invoice

import "fmt"

// transitions lists every legal status move. Anything absent is rejected.
// paid and voided have no outgoing edges: both are terminal.
var transitions = map[Status][]Status{
	StatusCreated:         {StatusSubmitted, StatusVoided},
	StatusSubmitted:       {StatusApproved, StatusChangeRequested, StatusVoided},
	StatusApproved:        {StatusInvoiced, StatusChangeRequested, StatusVoided},
	StatusChangeRequested: {StatusSubmitted, StatusApproved, StatusCreated, StatusVoided},
	StatusInvoiced:        {StatusPaid, StatusVoided},
	StatusPaid:            {},
	StatusVoided:          {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// Editable reports whether line items may still be changed.
func Editable(s Status) bool {
	return s == StatusCreated || s == StatusChangeRequested
}

// TransitionError rejects an illegal status move with a message naming the
// current status, so the caller can surface it verbatim.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	if IsTerminal(e.From) {
		return fmt.Sprintf("invoice is %s; no further changes are permitted", e.From)
	}
	return fmt.Sprintf("cannot move invoice from %s to %s", e.From, e.To)
}
