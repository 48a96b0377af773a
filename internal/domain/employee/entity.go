package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

// RateType selects how the invoice gross amount is derived: a flat monthly
// rate, or the hourly rate times approved timesheet hours in the period.
type RateType string

const (
	RateMonthly RateType = "monthly"
	RateHourly  RateType = "hourly"
)

// Employee belongs to exactly one organization. UserID is nil until the
// employee accepts an invitation and gets a login.
type Employee struct {
	ID             string
	OrganizationID string
	UserID         *string
	Name           string
	Email          string
	Position       *string
	Status         EmploymentStatus
	CurrencyID     string
	RateType       RateType
	Rate           decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	CurrencyCode  *string
	HasBankDetail bool
}

// BankDetail is the payout destination. Invoice generation skips employees
// without one and reports them instead of failing.
type BankDetail struct {
	ID            string
	EmployeeID    string
	BankName      string
	AccountName   string
	AccountNumber string
	IBAN          *string
	SwiftCode     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
