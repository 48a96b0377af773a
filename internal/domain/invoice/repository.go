package invoice

import "context"

// InvoiceRepository defines data access methods for invoice cycles, employee
// invoices, extra amount lines, catalog items and the audit log.
// All methods take organizationID to prevent cross-organization data access.
type InvoiceRepository interface {
	// Cycles
	CreateCycle(ctx context.Context, cycle Cycle) (Cycle, error)
	GetCycleByID(ctx context.Context, id string, organizationID string) (Cycle, error)
	GetCycleByPeriod(ctx context.Context, organizationID string, month, year int) (Cycle, error)
	ListCycles(ctx context.Context, organizationID string, filter CycleFilter) ([]Cycle, int64, error)
	UpdateCycleStatus(ctx context.Context, id string, organizationID string, status CycleStatus) error
	CountOpenInvoices(ctx context.Context, cycleID string, organizationID string) (int, error)
	GetCycleTotals(ctx context.Context, cycleID string, organizationID string) (CycleTotals, error)

	// Employee invoices
	CreateInvoice(ctx context.Context, inv EmployeeInvoice) (EmployeeInvoice, error)
	GetInvoiceByID(ctx context.Context, id string, organizationID string) (EmployeeInvoice, error)
	// GetInvoiceUnscoped looks an invoice up across all organizations. Only
	// the platform admin, whose token carries no tenant scope, may use it.
	GetInvoiceUnscoped(ctx context.Context, id string) (EmployeeInvoice, error)
	GetInvoiceForEmployee(ctx context.Context, id string, employeeID string) (EmployeeInvoice, error)
	ListInvoices(ctx context.Context, organizationID string, filter InvoiceFilter) ([]EmployeeInvoice, int64, error)
	ListInvoicesByEmployee(ctx context.Context, employeeID string, filter InvoiceFilter) ([]EmployeeInvoice, int64, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status Status, comment *string) error
	UpdateInvoiceAmounts(ctx context.Context, inv EmployeeInvoice) error

	// Extra amount lines
	GetExtraAmounts(ctx context.Context, invoiceID string) ([]ExtraAmount, error)
	ReplaceExtraAmounts(ctx context.Context, invoiceID string, lines []ExtraAmount) error

	// Catalog items
	CreateItem(ctx context.Context, item ExtraAmountItem) (ExtraAmountItem, error)
	GetItemByID(ctx context.Context, id string, organizationID string) (ExtraAmountItem, error)
	ListItems(ctx context.Context, organizationID string) ([]ExtraAmountItem, error)
	UpdateItem(ctx context.Context, organizationID string, req UpdateItemRequest) error
	DeleteItem(ctx context.Context, id string, organizationID string) error
	CountItemReferences(ctx context.Context, id string) (int, error)

	// History
	AppendHistory(ctx context.Context, entry HistoryEntry) error
	ListHistory(ctx context.Context, invoiceID string, filter HistoryFilter) ([]HistoryEntry, int64, error)
}
