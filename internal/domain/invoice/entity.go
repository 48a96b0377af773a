package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleStatus enum
type CycleStatus string

const (
	CycleStatusCreated   CycleStatus = "created"
	CycleStatusCompleted CycleStatus = "completed"
)

// Cycle is a billing period (month+year) scoped to one organization.
// Period boundaries are immutable once employee invoices are generated.
type Cycle struct {
	ID             string
	OrganizationID string
	Month          int
	Year           int
	Status         CycleStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined aggregates
	InvoiceCount *int
	TotalPayable *decimal.Decimal
}

// Status enum for employee invoices
type Status string

const (
	StatusCreated         Status = "created"
	StatusSubmitted       Status = "submitted"
	StatusApproved        Status = "approved"
	StatusChangeRequested Status = "change_requested"
	StatusInvoiced        Status = "invoiced"
	StatusPaid            Status = "paid"
	StatusVoided          Status = "voided"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusSubmitted, StatusApproved, StatusChangeRequested,
		StatusInvoiced, StatusPaid, StatusVoided:
		return true
	}
	return false
}

// EmployeeInvoice is the payable computed for one employee within one cycle.
// One row per (cycle, employee).
type EmployeeInvoice struct {
	ID              string
	CycleID         string
	OrganizationID  string
	EmployeeID      string
	CurrencyID      string
	GrossAmount     decimal.Decimal
	TotalAdditions  decimal.Decimal
	TotalDeductions decimal.Decimal
	PayableAmount   decimal.Decimal
	Status          Status
	Comment         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
	CurrencyCode  *string
	Month         *int
	Year          *int
}

// ExtraAmountKind enum
type ExtraAmountKind string

const (
	KindAddition  ExtraAmountKind = "addition"
	KindDeduction ExtraAmountKind = "deduction"
)

// ExtraAmountItem is a named catalog entry an organization reuses across
// invoices ("Bonus", "Health insurance", ...).
type ExtraAmountItem struct {
	ID             string
	OrganizationID string
	Title          string
	Kind           ExtraAmountKind
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ExtraAmount is one addition or deduction line on an invoice. Deduction
// amounts are stored positive; the sign is applied when the payable is
// computed. Percent lines resolve against the invoice gross amount.
type ExtraAmount struct {
	ID            string
	InvoiceID     string
	ExtraAmountID *string // catalog item reference, nil for ad-hoc lines
	Kind          ExtraAmountKind
	Amount        decimal.Decimal
	IsPercent     bool
	CreatedAt     time.Time

	// Joined fields
	Title *string
}

// History actions
const (
	ActionCreated         = "created"
	ActionSubmitted       = "submitted"
	ActionApproved        = "approved"
	ActionChangeRequested = "change_requested"
	ActionResolved        = "resolved"
	ActionReissued        = "reissued"
	ActionEdited          = "edited"
	ActionInvoiced        = "invoiced"
	ActionPaid            = "paid"
	ActionVoided          = "voided"
	ActionPaymentRecorded = "payment_recorded"
)

// HistoryEntry is one row of the append-only invoice audit log.
type HistoryEntry struct {
	ID        string
	InvoiceID string
	Action    string
	Actor     string
	ActorRole string
	Comment   *string
	CreatedAt time.Time
}

// CycleTotals are the server-computed aggregates behind the cycle breakdown.
type CycleTotals struct {
	StatusCounts map[Status]int
	TotalPayable decimal.Decimal
	TotalPaid    decimal.Decimal
}

// MissingBankDetail identifies an employee skipped during invoice
// generation because no bank detail is on file.
type MissingBankDetail struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
