package invoice

import "context"

// InvoiceService covers the invoice lifecycle: cycle management, per-employee
// invoices, line item editing, status transitions and the audit log.
// Organization and actor identity come from the JWT claims in ctx.
type InvoiceService interface {
	// Cycles (organization)
	CreateCycle(ctx context.Context, req CreateCycleRequest) (CreateCycleResponse, error)
	ListCycles(ctx context.Context, filter CycleFilter) (ListCycleResponse, error)
	GetCycleBreakdown(ctx context.Context, cycleID string) (CycleBreakdownResponse, error)
	CompleteCycle(ctx context.Context, cycleID string) (CycleResponse, error)

	// Invoices (organization)
	ListInvoices(ctx context.Context, filter InvoiceFilter) (ListEmployeeInvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	EditInvoice(ctx context.Context, req EditInvoiceRequest) (EmployeeInvoiceResponse, error)
	ApproveInvoice(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	ResolveChangeRequest(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	ReissueInvoice(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	MarkInvoiced(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	MarkPaid(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	VoidInvoice(ctx context.Context, id string) (EmployeeInvoiceResponse, error)

	// Invoices (employee)
	ListMyInvoices(ctx context.Context, filter InvoiceFilter) (ListEmployeeInvoiceResponse, error)
	GetMyInvoice(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	SubmitInvoice(ctx context.Context, id string) (EmployeeInvoiceResponse, error)
	RequestInvoiceChanges(ctx context.Context, req ChangeRequestRequest) (EmployeeInvoiceResponse, error)

	// Catalog items (organization)
	CreateItem(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	ListItems(ctx context.Context) ([]ItemResponse, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) (ItemResponse, error)
	DeleteItem(ctx context.Context, id string) error

	// History
	GetHistory(ctx context.Context, invoiceID string, filter HistoryFilter) (ListHistoryResponse, error)
}
