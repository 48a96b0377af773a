package paycycle

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// errComment is returned before any network call when a comment is required
// and missing.
func errComment(field string) *APIError {
	return &APIError{
		Status:      422,
		Code:        "VALIDATION_ERROR",
		Message:     "Validation failed",
		FieldErrors: map[string]string{field: "is required"},
	}
}

// ========== CYCLES ==========

func (c *Client) CreateCycle(ctx context.Context, in CreateCycleInput) (CreateCycleResult, error) {
	var out CreateCycleResult
	err := c.post(ctx, "/organization/invoices", in, &out)
	return out, err
}

func (c *Client) ListCycles(ctx context.Context, month, year, page, limit int) (CycleList, error) {
	q := map[string]string{}
	if month > 0 {
		q["month"] = strconv.Itoa(month)
	}
	if year > 0 {
		q["year"] = strconv.Itoa(year)
	}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out CycleList
	_, err := c.get(ctx, "/organization/invoices"+query(q), &out)
	return out, err
}

func (c *Client) GetCycleBreakdown(ctx context.Context, cycleID string) (CycleBreakdown, error) {
	var out CycleBreakdown
	_, err := c.get(ctx, "/organization/invoices/cycle-breakdown/"+cycleID, &out)
	return out, err
}

func (c *Client) CompleteCycle(ctx context.Context, cycleID string) (Cycle, error) {
	var out Cycle
	err := c.put(ctx, "/organization/invoices/complete-cycle/"+cycleID, nil, &out)
	return out, err
}

// ========== INVOICES (organization) ==========

func (f InvoiceFilter) toQuery() string {
	q := map[string]string{
		"cycle_id":    f.CycleID,
		"employee_id": f.EmployeeID,
		"status":      f.Status,
		"search":      f.Search,
	}
	if f.Page > 0 {
		q["page"] = strconv.Itoa(f.Page)
	}
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	return query(q)
}

func (c *Client) ListCycleInvoices(ctx context.Context, cycleID string, f InvoiceFilter) (InvoiceList, error) {
	var out InvoiceList
	_, err := c.get(ctx, "/organization/invoices/employee-invoice-list/"+cycleID+f.toQuery(), &out)
	return out, err
}

func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	var out Invoice
	_, err := c.get(ctx, "/organization/invoices/"+invoiceID, &out)
	return out, err
}

func (c *Client) EditInvoice(ctx context.Context, invoiceID string, in EditInvoiceInput) (Invoice, error) {
	var out Invoice
	err := c.put(ctx, "/organization/invoices/"+invoiceID, in, &out)
	return out, err
}

func (c *Client) transition(ctx context.Context, invoiceID, action string, body any) (Invoice, error) {
	var out Invoice
	err := c.put(ctx, fmt.Sprintf("/organization/invoices/%s/%s", invoiceID, action), body, &out)
	return out, err
}

func (c *Client) ApproveInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	return c.transition(ctx, invoiceID, "approve", nil)
}

// ResolveChangeRequest moves a change-requested invoice back to approved.
func (c *Client) ResolveChangeRequest(ctx context.Context, invoiceID string) (Invoice, error) {
	return c.transition(ctx, invoiceID, "resolve", nil)
}

// ReissueInvoice moves a change-requested invoice back to created so the
// employee can rework it.
func (c *Client) ReissueInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	return c.transition(ctx, invoiceID, "create", nil)
}

func (c *Client) VoidInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	return c.transition(ctx, invoiceID, "void", nil)
}

func (c *Client) MarkInvoiced(ctx context.Context, invoiceID string) (Invoice, error) {
	return c.transition(ctx, invoiceID, "invoiced", nil)
}

// MarkPaid is rejected by the server unless payments cover the payable in
// full; it never flips automatically.
func (c *Client) MarkPaid(ctx context.Context, invoiceID string) (Invoice, error) {
	return c.transition(ctx, invoiceID, "paid", nil)
}

// ========== INVOICES (employee) ==========

func (c *Client) ListMyInvoices(ctx context.Context, f InvoiceFilter) (InvoiceList, error) {
	var out InvoiceList
	_, err := c.get(ctx, "/employee/invoice"+f.toQuery(), &out)
	return out, err
}

func (c *Client) GetMyInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	var out Invoice
	_, err := c.get(ctx, "/employee/invoice/"+invoiceID, &out)
	return out, err
}

func (c *Client) SubmitInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	var out Invoice
	err := c.put(ctx, "/employee/invoice/"+invoiceID+"/submit", nil, &out)
	return out, err
}

// RequestInvoiceChanges requires a non-empty comment; the check runs before
// any network call.
func (c *Client) RequestInvoiceChanges(ctx context.Context, invoiceID, comment string) (Invoice, error) {
	if strings.TrimSpace(comment) == "" {
		return Invoice{}, errComment("comment")
	}

	body := map[string]string{"comment": comment}
	var out Invoice
	err := c.put(ctx, "/employee/invoice/"+invoiceID+"/change-request", body, &out)
	return out, err
}

// ========== CATALOG ITEMS ==========

func (c *Client) CreateItem(ctx context.Context, in CreateItemInput) (Item, error) {
	var out Item
	err := c.post(ctx, "/organization/invoice-items", in, &out)
	return out, err
}

func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var out []Item
	_, err := c.get(ctx, "/organization/invoice-items", &out)
	return out, err
}

func (c *Client) UpdateItem(ctx context.Context, itemID string, in UpdateItemInput) (Item, error) {
	var out Item
	err := c.put(ctx, "/organization/invoice-items/"+itemID, in, &out)
	return out, err
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.delete(ctx, "/organization/invoice-items/"+itemID)
}

// ========== HISTORY ==========

func (c *Client) GetInvoiceHistory(ctx context.Context, invoiceID string, page, limit int) (HistoryList, error) {
	q := map[string]string{}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out HistoryList
	_, err := c.get(ctx, "/organization/invoice-history/"+invoiceID+query(q), &out)
	return out, err
}

// GetMyInvoiceHistory reads the history of one of the caller's own invoices.
func (c *Client) GetMyInvoiceHistory(ctx context.Context, invoiceID string, page, limit int) (HistoryList, error) {
	q := map[string]string{}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out HistoryList
	_, err := c.get(ctx, "/employee/invoice-history/"+invoiceID+query(q), &out)
	return out, err
}
