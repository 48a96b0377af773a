package paycycle

import "github.com/shopspring/decimal"

// Invoice statuses as the server reports them.
const (
	InvoiceCreated         = "created"
	InvoiceSubmitted       = "submitted"
	InvoiceApproved        = "approved"
	InvoiceChangeRequested = "change_requested"
	InvoiceInvoiced        = "invoiced"
	InvoicePaid            = "paid"
	InvoiceVoided          = "voided"
)

// ========== CYCLES ==========

type Cycle struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	Month          int              `json:"month"`
	Year           int              `json:"year"`
	Status         string           `json:"status"`
	InvoiceCount   *int             `json:"invoice_count,omitempty"`
	TotalPayable   *decimal.Decimal `json:"total_payable,omitempty"`
	CreatedAt      string           `json:"created_at"`
}

type CreateCycleInput struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type MissingBankDetail struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type CreateCycleResult struct {
	Cycle              Cycle               `json:"cycle"`
	GeneratedInvoices  int                 `json:"generated_invoices"`
	MissingBankDetails []MissingBankDetail `json:"missing_bank_details"`
}

type CycleBreakdown struct {
	Cycle            Cycle           `json:"cycle"`
	StatusCounts     map[string]int  `json:"status_counts"`
	TotalPayable     decimal.Decimal `json:"total_payable"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

type CycleList struct {
	Data       []Cycle `json:"data"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

// ========== INVOICES ==========

type ExtraAmountLine struct {
	ID            string          `json:"id"`
	ExtraAmountID *string         `json:"extra_amount_id,omitempty"`
	Title         *string         `json:"title,omitempty"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	IsPercent     bool            `json:"is_percent"`
}

type Invoice struct {
	ID              string            `json:"id"`
	CycleID         string            `json:"cycle_id"`
	EmployeeID      string            `json:"employee_id"`
	EmployeeName    *string           `json:"employee_name,omitempty"`
	EmployeeEmail   *string           `json:"employee_email,omitempty"`
	CurrencyCode    *string           `json:"currency_code,omitempty"`
	Month           *int              `json:"month,omitempty"`
	Year            *int              `json:"year,omitempty"`
	GrossAmount     decimal.Decimal   `json:"gross_amount"`
	TotalAdditions  decimal.Decimal   `json:"total_additions"`
	TotalDeductions decimal.Decimal   `json:"total_deductions"`
	PayableAmount   decimal.Decimal   `json:"payable_amount"`
	PaidAmount      decimal.Decimal   `json:"paid_amount"`
	RemainingAmount decimal.Decimal   `json:"remaining_amount"`
	Status          string            `json:"status"`
	Comment         *string           `json:"comment,omitempty"`
	ExtraAmounts    []ExtraAmountLine `json:"extra_amounts,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

type InvoiceList struct {
	Data       []Invoice `json:"data"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
}

// InvoiceFilter narrows list calls. Empty fields are omitted from the query.
type InvoiceFilter struct {
	CycleID    string
	EmployeeID string
	Status     string
	Search     string
	Page       int
	Limit      int
}

// ExtraAmountEdit is one line of an invoice edit. Set ExtraAmountID for a
// catalog item, or Kind for an ad-hoc line.
type ExtraAmountEdit struct {
	ExtraAmountID *string         `json:"extra_amount_id,omitempty"`
	Kind          *string         `json:"kind,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	IsPercent     bool            `json:"is_percent"`
}

type EditInvoiceInput struct {
	GrossAmount  *decimal.Decimal  `json:"gross_amount,omitempty"`
	ExtraAmounts []ExtraAmountEdit `json:"extra_amounts"`
}

type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

type CreateItemInput struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

type UpdateItemInput struct {
	Title *string `json:"title,omitempty"`
	Kind  *string `json:"kind,omitempty"`
}

type HistoryEntry struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoice_id"`
	Action    string  `json:"action"`
	Actor     string  `json:"actor"`
	ActorRole string  `json:"actor_role"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type HistoryList struct {
	Data       []HistoryEntry `json:"data"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// ========== PAYMENTS ==========

type Payment struct {
	ID         string          `json:"id"`
	InvoiceID  string          `json:"invoice_id"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     string          `json:"paid_at"`
	Note       *string         `json:"note,omitempty"`
	ReceiptURL *string         `json:"receipt_url,omitempty"`
	RecordedBy string          `json:"recorded_by"`
	CreatedAt  string          `json:"created_at"`
}

type RecordPaymentResult struct {
	Payment         Payment         `json:"payment"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

type PaymentList struct {
	Data       []Payment `json:"data"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
}

// ========== EMPLOYEES ==========

type BankDetail struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	BankName      string  `json:"bank_name"`
	AccountName   string  `json:"account_name"`
	AccountNumber string  `json:"account_number"`
	IBAN          *string `json:"iban,omitempty"`
	SwiftCode     *string `json:"swift_code,omitempty"`
}

type Employee struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Position      *string         `json:"position,omitempty"`
	Status        string          `json:"status"`
	CurrencyID    string          `json:"currency_id"`
	CurrencyCode  *string         `json:"currency_code,omitempty"`
	RateType      string          `json:"rate_type"`
	Rate          decimal.Decimal `json:"rate"`
	HasBankDetail bool            `json:"has_bank_detail"`
	BankDetail    *BankDetail     `json:"bank_detail,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

type CreateEmployeeInput struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   *string         `json:"position,omitempty"`
	CurrencyID string          `json:"currency_id"`
	RateType   string          `json:"rate_type"`
	Rate       decimal.Decimal `json:"rate"`
}

type UpdateEmployeeInput struct {
	Name       *string          `json:"name,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Status     *string          `json:"status,omitempty"`
	CurrencyID *string          `json:"currency_id,omitempty"`
	RateType   *string          `json:"rate_type,omitempty"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`
}

type UpsertBankDetailInput struct {
	BankName      string  `json:"bank_name"`
	AccountName   string  `json:"account_name"`
	AccountNumber string  `json:"account_number"`
	IBAN          *string `json:"iban,omitempty"`
	SwiftCode     *string `json:"swift_code,omitempty"`
}

type EmployeeList struct {
	Data       []Employee `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

// ========== TIMESHEETS ==========

type TimesheetEntry struct {
	ID              string          `json:"id,omitempty"`
	Date            string          `json:"date"`
	Hours           decimal.Decimal `json:"hours"`
	TaskTitle       string          `json:"task_title"`
	TaskDescription *string         `json:"task_description,omitempty"`
}

type Timesheet struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	EmployeeName  *string          `json:"employee_name,omitempty"`
	WeekStart     string           `json:"week_start"`
	Status        string           `json:"status"`
	ReviewComment *string          `json:"review_comment,omitempty"`
	TotalHours    *decimal.Decimal `json:"total_hours,omitempty"`
	Entries       []TimesheetEntry `json:"entries,omitempty"`
	CreatedAt     string           `json:"created_at"`
}

type CreateTimesheetInput struct {
	WeekStart string           `json:"week_start"`
	Entries   []TimesheetEntry `json:"entries"`
}

type TimesheetList struct {
	Data       []Timesheet `json:"data"`
	TotalCount int64       `json:"total_count"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
}

// ========== DOCUMENTS ==========

type Document struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	FileName    string  `json:"file_name"`
	ContentType string  `json:"content_type"`
	SizeBytes   int64   `json:"size_bytes"`
	UploadedBy  string  `json:"uploaded_by"`
	CreatedAt   string  `json:"created_at"`
}

type DocumentList struct {
	Data       []Document `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

// ========== INVITATIONS ==========

type Invitation struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	OrganizationName *string `json:"organization_name,omitempty"`
	Email            string  `json:"email"`
	Status           string  `json:"status"`
	ExpiresAt        string  `json:"expires_at"`
	CreatedAt        string  `json:"created_at"`
}
