package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

// NewPaymentRepository creates a new payment repository instance.
// The payments table is append-only: no update or delete statement exists.
func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

// CreatePayment implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) CreatePayment(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (invoice_id, organization_id, amount, paid_at, note, receipt_path, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, invoice_id, organization_id, amount, paid_at, note, receipt_path, recorded_by, created_at
	`

	var created payment.Payment
	err := q.QueryRow(ctx, query,
		p.InvoiceID, p.OrganizationID, p.Amount, p.PaidAt, p.Note, p.ReceiptPath, p.RecordedBy,
	).Scan(
		&created.ID, &created.InvoiceID, &created.OrganizationID, &created.Amount,
		&created.PaidAt, &created.Note, &created.ReceiptPath, &created.RecordedBy, &created.CreatedAt,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

// GetPaymentByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetPaymentByID(ctx context.Context, id string, organizationID string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, invoice_id, organization_id, amount, paid_at, note, receipt_path, recorded_by, created_at
		FROM payments
		WHERE id = $1 AND organization_id = $2
	`

	var p payment.Payment
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&p.ID, &p.InvoiceID, &p.OrganizationID, &p.Amount,
		&p.PaidAt, &p.Note, &p.ReceiptPath, &p.RecordedBy, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// ListPaymentsByInvoice implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListPaymentsByInvoice(ctx context.Context, invoiceID string, filter payment.PaymentFilter) ([]payment.Payment, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM payments WHERE invoice_id = $1`
	if err := q.QueryRow(ctx, countQuery, invoiceID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `
		SELECT id, invoice_id, organization_id, amount, paid_at, note, receipt_path, recorded_by, created_at
		FROM payments
		WHERE invoice_id = $1
		ORDER BY paid_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, invoiceID, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(
			&p.ID, &p.InvoiceID, &p.OrganizationID, &p.Amount,
			&p.PaidAt, &p.Note, &p.ReceiptPath, &p.RecordedBy, &p.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, total, nil
}

// SumPaymentsByInvoice implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) SumPaymentsByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, invoiceID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}

	return sum, nil
}
