package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invoice"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

// ========== CYCLES ==========

// CreateCycle implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) CreateCycle(ctx context.Context, cycle invoice.Cycle) (invoice.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoice_cycles (organization_id, month, year, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, organization_id, month, year, status, created_at, updated_at
	`

	var created invoice.Cycle
	err := q.QueryRow(ctx, query, cycle.OrganizationID, cycle.Month, cycle.Year, cycle.Status).Scan(
		&created.ID, &created.OrganizationID, &created.Month, &created.Year,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return invoice.Cycle{}, invoice.ErrCycleExists
		}
		return invoice.Cycle{}, fmt.Errorf("failed to create cycle: %w", err)
	}

	return created, nil
}

const cycleSelect = `
	SELECT ic.id, ic.organization_id, ic.month, ic.year, ic.status,
		   ic.created_at, ic.updated_at,
		   COUNT(ei.id)::int AS invoice_count,
		   COALESCE(SUM(ei.payable_amount), 0) AS total_payable
	FROM invoice_cycles ic
	LEFT JOIN employee_invoices ei ON ei.cycle_id = ic.id`

const cycleGroup = ` GROUP BY ic.id`

func scanCycle(row pgx.Row) (invoice.Cycle, error) {
	var c invoice.Cycle
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.Month, &c.Year, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.InvoiceCount, &c.TotalPayable,
	)
	return c, err
}

// GetCycleByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetCycleByID(ctx context.Context, id string, organizationID string) (invoice.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := cycleSelect + ` WHERE ic.id = $1 AND ic.organization_id = $2` + cycleGroup

	c, err := scanCycle(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Cycle{}, invoice.ErrCycleNotFound
		}
		return invoice.Cycle{}, fmt.Errorf("failed to get cycle: %w", err)
	}

	return c, nil
}

// GetCycleByPeriod implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetCycleByPeriod(ctx context.Context, organizationID string, month, year int) (invoice.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := cycleSelect + ` WHERE ic.organization_id = $1 AND ic.month = $2 AND ic.year = $3` + cycleGroup

	c, err := scanCycle(q.QueryRow(ctx, query, organizationID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Cycle{}, invoice.ErrCycleNotFound
		}
		return invoice.Cycle{}, fmt.Errorf("failed to get cycle by period: %w", err)
	}

	return c, nil
}

// ListCycles implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListCycles(ctx context.Context, organizationID string, filter invoice.CycleFilter) ([]invoice.Cycle, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE ic.organization_id = $1`
	args := []any{organizationID}

	if filter.Month != nil {
		args = append(args, *filter.Month)
		where += fmt.Sprintf(" AND ic.month = $%d", len(args))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		where += fmt.Sprintf(" AND ic.year = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM invoice_cycles ic` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cycles: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := cycleSelect + where + cycleGroup +
		fmt.Sprintf(" ORDER BY ic.year DESC, ic.month DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cycles: %w", err)
	}
	defer rows.Close()

	var cycles []invoice.Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan cycle: %w", err)
		}
		cycles = append(cycles, c)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return cycles, total, nil
}

// UpdateCycleStatus implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) UpdateCycleStatus(ctx context.Context, id string, organizationID string, status invoice.CycleStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoice_cycles
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND organization_id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id, organizationID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.ErrCycleNotFound
		}
		return fmt.Errorf("failed to update cycle status: %w", err)
	}

	return nil
}

// CountOpenInvoices implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) CountOpenInvoices(ctx context.Context, cycleID string, organizationID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM employee_invoices
		WHERE cycle_id = $1 AND organization_id = $2 AND status NOT IN ('paid', 'voided')
	`

	var count int
	if err := q.QueryRow(ctx, query, cycleID, organizationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open invoices: %w", err)
	}

	return count, nil
}

// GetCycleTotals implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetCycleTotals(ctx context.Context, cycleID string, organizationID string) (invoice.CycleTotals, error) {
	q := GetQuerier(ctx, r.db)

	totals := invoice.CycleTotals{StatusCounts: make(map[invoice.Status]int)}

	query := `
		SELECT status, COUNT(*)::int, COALESCE(SUM(payable_amount), 0)
		FROM employee_invoices
		WHERE cycle_id = $1 AND organization_id = $2
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, cycleID, organizationID)
	if err != nil {
		return invoice.CycleTotals{}, fmt.Errorf("failed to get cycle totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status invoice.Status
		var count int
		var payable decimal.Decimal
		if err := rows.Scan(&status, &count, &payable); err != nil {
			return invoice.CycleTotals{}, fmt.Errorf("failed to scan cycle totals: %w", err)
		}
		totals.StatusCounts[status] = count
		if status != invoice.StatusVoided {
			totals.TotalPayable = totals.TotalPayable.Add(payable)
		}
	}
	if err = rows.Err(); err != nil {
		return invoice.CycleTotals{}, fmt.Errorf("rows iteration error: %w", err)
	}

	paidQuery := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN employee_invoices ei ON ei.id = p.invoice_id
		WHERE ei.cycle_id = $1 AND ei.organization_id = $2 AND ei.status != 'voided'
	`
	if err := q.QueryRow(ctx, paidQuery, cycleID, organizationID).Scan(&totals.TotalPaid); err != nil {
		return invoice.CycleTotals{}, fmt.Errorf("failed to sum cycle payments: %w", err)
	}

	return totals, nil
}

// ========== EMPLOYEE INVOICES ==========

const invoiceSelect = `
	SELECT ei.id, ei.cycle_id, ei.organization_id, ei.employee_id, ei.currency_id,
		   ei.gross_amount, ei.total_additions, ei.total_deductions, ei.payable_amount,
		   ei.status, ei.comment, ei.created_at, ei.updated_at,
		   e.name AS employee_name, e.email AS employee_email,
		   c.code AS currency_code, ic.month, ic.year
	FROM employee_invoices ei
	JOIN employees e ON e.id = ei.employee_id
	JOIN currencies c ON c.id = ei.currency_id
	JOIN invoice_cycles ic ON ic.id = ei.cycle_id`

func scanInvoice(row pgx.Row) (invoice.EmployeeInvoice, error) {
	var inv invoice.EmployeeInvoice
	err := row.Scan(
		&inv.ID, &inv.CycleID, &inv.OrganizationID, &inv.EmployeeID, &inv.CurrencyID,
		&inv.GrossAmount, &inv.TotalAdditions, &inv.TotalDeductions, &inv.PayableAmount,
		&inv.Status, &inv.Comment, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.EmployeeName, &inv.EmployeeEmail, &inv.CurrencyCode, &inv.Month, &inv.Year,
	)
	return inv, err
}

// CreateInvoice implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) CreateInvoice(ctx context.Context, inv invoice.EmployeeInvoice) (invoice.EmployeeInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_invoices (
			cycle_id, organization_id, employee_id, currency_id,
			gross_amount, total_additions, total_deductions, payable_amount, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, cycle_id, organization_id, employee_id, currency_id,
				  gross_amount, total_additions, total_deductions, payable_amount,
				  status, comment, created_at, updated_at
	`

	var created invoice.EmployeeInvoice
	err := q.QueryRow(ctx, query,
		inv.CycleID, inv.OrganizationID, inv.EmployeeID, inv.CurrencyID,
		inv.GrossAmount, inv.TotalAdditions, inv.TotalDeductions, inv.PayableAmount, inv.Status,
	).Scan(
		&created.ID, &created.CycleID, &created.OrganizationID, &created.EmployeeID,
		&created.CurrencyID, &created.GrossAmount, &created.TotalAdditions,
		&created.TotalDeductions, &created.PayableAmount, &created.Status,
		&created.Comment, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return invoice.EmployeeInvoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return created, nil
}

// GetInvoiceByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetInvoiceByID(ctx context.Context, id string, organizationID string) (invoice.EmployeeInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := invoiceSelect + ` WHERE ei.id = $1 AND ei.organization_id = $2`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.EmployeeInvoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.EmployeeInvoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return inv, nil
}

// GetInvoiceUnscoped implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetInvoiceUnscoped(ctx context.Context, id string) (invoice.EmployeeInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := invoiceSelect + ` WHERE ei.id = $1`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.EmployeeInvoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.EmployeeInvoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return inv, nil
}

// GetInvoiceForEmployee implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetInvoiceForEmployee(ctx context.Context, id string, employeeID string) (invoice.EmployeeInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := invoiceSelect + ` WHERE ei.id = $1 AND ei.employee_id = $2`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.EmployeeInvoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.EmployeeInvoice{}, fmt.Errorf("failed to get invoice for employee: %w", err)
	}

	return inv, nil
}

func buildInvoiceFilter(where string, args []any, filter invoice.InvoiceFilter) (string, []any) {
	if filter.CycleID != nil {
		args = append(args, *filter.CycleID)
		where += fmt.Sprintf(" AND ei.cycle_id = $%d", len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(" AND ei.employee_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND ei.status = $%d", len(args))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		where += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.email ILIKE $%d)", len(args), len(args))
	}
	return where, args
}

func (r *invoiceRepositoryImpl) listInvoices(ctx context.Context, where string, args []any, filter invoice.InvoiceFilter) ([]invoice.EmployeeInvoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args = buildInvoiceFilter(where, args, filter)

	countQuery := `
		SELECT COUNT(*)
		FROM employee_invoices ei
		JOIN employees e ON e.id = ei.employee_id
		JOIN currencies c ON c.id = ei.currency_id
		JOIN invoice_cycles ic ON ic.id = ei.cycle_id` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := invoiceSelect + where +
		fmt.Sprintf(" ORDER BY ei.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.EmployeeInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return invoices, total, nil
}

// ListInvoices implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListInvoices(ctx context.Context, organizationID string, filter invoice.InvoiceFilter) ([]invoice.EmployeeInvoice, int64, error) {
	return r.listInvoices(ctx, ` WHERE ei.organization_id = $1`, []any{organizationID}, filter)
}

// ListInvoicesByEmployee implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListInvoicesByEmployee(ctx context.Context, employeeID string, filter invoice.InvoiceFilter) ([]invoice.EmployeeInvoice, int64, error) {
	return r.listInvoices(ctx, ` WHERE ei.employee_id = $1`, []any{employeeID}, filter)
}

// UpdateInvoiceStatus implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) UpdateInvoiceStatus(ctx context.Context, id string, status invoice.Status, comment *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_invoices
		SET status = $1, comment = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, comment, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	return nil
}

// UpdateInvoiceAmounts implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) UpdateInvoiceAmounts(ctx context.Context, inv invoice.EmployeeInvoice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_invoices
		SET gross_amount = $1, total_additions = $2, total_deductions = $3,
			payable_amount = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		inv.GrossAmount, inv.TotalAdditions, inv.TotalDeductions, inv.PayableAmount, inv.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to update invoice amounts: %w", err)
	}

	return nil
}

// ========== EXTRA AMOUNT LINES ==========

// GetExtraAmounts implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetExtraAmounts(ctx context.Context, invoiceID string) ([]invoice.ExtraAmount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ea.id, ea.invoice_id, ea.extra_amount_id, ea.kind, ea.amount,
			   ea.is_percent, ea.created_at, i.title
		FROM invoice_extra_amounts ea
		LEFT JOIN invoice_items i ON i.id = ea.extra_amount_id
		WHERE ea.invoice_id = $1
		ORDER BY ea.created_at ASC
	`

	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get extra amounts: %w", err)
	}
	defer rows.Close()

	var lines []invoice.ExtraAmount
	for rows.Next() {
		var line invoice.ExtraAmount
		err := rows.Scan(
			&line.ID, &line.InvoiceID, &line.ExtraAmountID, &line.Kind,
			&line.Amount, &line.IsPercent, &line.CreatedAt, &line.Title,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extra amount: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return lines, nil
}

// ReplaceExtraAmounts implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ReplaceExtraAmounts(ctx context.Context, invoiceID string, lines []invoice.ExtraAmount) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM invoice_extra_amounts WHERE invoice_id = $1`, invoiceID); err != nil {
		return fmt.Errorf("failed to clear extra amounts: %w", err)
	}

	query := `
		INSERT INTO invoice_extra_amounts (invoice_id, extra_amount_id, kind, amount, is_percent)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, line := range lines {
		_, err := q.Exec(ctx, query, invoiceID, line.ExtraAmountID, line.Kind, line.Amount, line.IsPercent)
		if err != nil {
			return fmt.Errorf("failed to insert extra amount: %w", err)
		}
	}

	return nil
}

// ========== CATALOG ITEMS ==========

// CreateItem implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) CreateItem(ctx context.Context, item invoice.ExtraAmountItem) (invoice.ExtraAmountItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoice_items (organization_id, title, kind)
		VALUES ($1, $2, $3)
		RETURNING id, organization_id, title, kind, created_at, updated_at
	`

	var created invoice.ExtraAmountItem
	err := q.QueryRow(ctx, query, item.OrganizationID, item.Title, item.Kind).Scan(
		&created.ID, &created.OrganizationID, &created.Title, &created.Kind,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return invoice.ExtraAmountItem{}, fmt.Errorf("failed to create invoice item: %w", err)
	}

	return created, nil
}

// GetItemByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetItemByID(ctx context.Context, id string, organizationID string) (invoice.ExtraAmountItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, title, kind, created_at, updated_at
		FROM invoice_items
		WHERE id = $1 AND organization_id = $2
	`

	var item invoice.ExtraAmountItem
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&item.ID, &item.OrganizationID, &item.Title, &item.Kind,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.ExtraAmountItem{}, invoice.ErrItemNotFound
		}
		return invoice.ExtraAmountItem{}, fmt.Errorf("failed to get invoice item: %w", err)
	}

	return item, nil
}

// ListItems implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListItems(ctx context.Context, organizationID string) ([]invoice.ExtraAmountItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, title, kind, created_at, updated_at
		FROM invoice_items
		WHERE organization_id = $1
		ORDER BY title ASC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	defer rows.Close()

	var items []invoice.ExtraAmountItem
	for rows.Next() {
		var item invoice.ExtraAmountItem
		err := rows.Scan(
			&item.ID, &item.OrganizationID, &item.Title, &item.Kind,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// UpdateItem implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) UpdateItem(ctx context.Context, organizationID string, req invoice.UpdateItemRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoice_items
		SET title = COALESCE($1, title),
			kind = COALESCE($2, kind),
			updated_at = NOW()
		WHERE id = $3 AND organization_id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.Title, req.Kind, req.ID, organizationID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.ErrItemNotFound
		}
		return fmt.Errorf("failed to update invoice item: %w", err)
	}

	return nil
}

// DeleteItem implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) DeleteItem(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM invoice_items WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrItemNotFound
	}

	return nil
}

// CountItemReferences implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) CountItemReferences(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM invoice_extra_amounts WHERE extra_amount_id = $1`
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count item references: %w", err)
	}

	return count, nil
}

// ========== HISTORY ==========

// AppendHistory implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) AppendHistory(ctx context.Context, entry invoice.HistoryEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoice_history (invoice_id, action, actor, actor_role, comment)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, entry.InvoiceID, entry.Action, entry.Actor, entry.ActorRole, entry.Comment)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	return nil
}

// ListHistory implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListHistory(ctx context.Context, invoiceID string, filter invoice.HistoryFilter) ([]invoice.HistoryEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM invoice_history WHERE invoice_id = $1`
	if err := q.QueryRow(ctx, countQuery, invoiceID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count history: %w", err)
	}

	query := `
		SELECT id, invoice_id, action, actor, actor_role, comment, created_at
		FROM invoice_history
		WHERE invoice_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, invoiceID, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []invoice.HistoryEntry
	for rows.Next() {
		var entry invoice.HistoryEntry
		err := rows.Scan(
			&entry.ID, &entry.InvoiceID, &entry.Action, &entry.Actor,
			&entry.ActorRole, &entry.Comment, &entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, total, nil
}
