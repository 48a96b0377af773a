package invoice

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invoice"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
)

func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

// stubInvoiceRepo serves lookups from a fixed map and records which lookup
// path each call took. Methods the tests never reach stay on the embedded
// interface.
type stubInvoiceRepo struct {
	invoice.InvoiceRepository

	byID    map[string]invoice.EmployeeInvoice
	entries []invoice.HistoryEntry

	unscopedCalls []string
	orgCalls      []string
	employeeCalls []string
}

func (r *stubInvoiceRepo) GetInvoiceByID(ctx context.Context, id string, organizationID string) (invoice.EmployeeInvoice, error) {
	r.orgCalls = append(r.orgCalls, id)
	inv, ok := r.byID[id]
	if !ok || inv.OrganizationID != organizationID {
		return invoice.EmployeeInvoice{}, invoice.ErrInvoiceNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) GetInvoiceUnscoped(ctx context.Context, id string) (invoice.EmployeeInvoice, error) {
	r.unscopedCalls = append(r.unscopedCalls, id)
	inv, ok := r.byID[id]
	if !ok {
		return invoice.EmployeeInvoice{}, invoice.ErrInvoiceNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) GetInvoiceForEmployee(ctx context.Context, id string, employeeID string) (invoice.EmployeeInvoice, error) {
	r.employeeCalls = append(r.employeeCalls, id)
	inv, ok := r.byID[id]
	if !ok || inv.EmployeeID != employeeID {
		return invoice.EmployeeInvoice{}, invoice.ErrInvoiceNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) ListHistory(ctx context.Context, invoiceID string, filter invoice.HistoryFilter) ([]invoice.HistoryEntry, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

type stubPaymentRepo struct {
	payment.PaymentRepository

	paid decimal.Decimal
}

func (r *stubPaymentRepo) SumPaymentsByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	return r.paid, nil
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{
		byID: map[string]invoice.EmployeeInvoice{
			"inv-1": {
				ID:             "inv-1",
				OrganizationID: "org-1",
				EmployeeID:     "emp-1",
				PayableAmount:  decimal.NewFromInt(100),
				Status:         invoice.StatusCreated,
			},
		},
	}
}

func TestMarkInvoiced_AdminReadsAcrossOrganizations(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(nil, repo, nil, nil, nil)

	// Admin tokens carry no organization_id claim.
	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "u-admin",
		"email":   "root@paycycle.test",
		"role":    "admin",
	})

	_, err := svc.MarkInvoiced(ctx, "inv-1")

	// The lookup must succeed without a tenant scope; the created invoice
	// then fails the state check, proving the claims were accepted.
	var terr *invoice.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, invoice.StatusCreated, terr.From)
	assert.Equal(t, invoice.StatusInvoiced, terr.To)
	assert.Equal(t, []string{"inv-1"}, repo.unscopedCalls)
	assert.Empty(t, repo.orgCalls)
}

func TestMarkPaid_AdminEnforcesRemainingBalance(t *testing.T) {
	repo := newStubInvoiceRepo()
	inv := repo.byID["inv-1"]
	inv.Status = invoice.StatusInvoiced
	repo.byID["inv-1"] = inv

	payRepo := &stubPaymentRepo{paid: decimal.NewFromInt(40)}
	svc := NewInvoiceService(nil, repo, nil, payRepo, nil)

	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "u-admin",
		"email":   "root@paycycle.test",
		"role":    "admin",
	})

	_, err := svc.MarkPaid(ctx, "inv-1")

	require.ErrorIs(t, err, invoice.ErrOutstandingBalance)
	assert.Equal(t, []string{"inv-1"}, repo.unscopedCalls)
}

func TestMarkInvoiced_OrganizationStaysScoped(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(nil, repo, nil, nil, nil)

	// A different tenant must not see the invoice at all.
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":         "u-org",
		"email":           "owner@other.test",
		"organization_id": "org-2",
		"role":            "organization",
	})

	_, err := svc.MarkInvoiced(ctx, "inv-1")

	require.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
	assert.Equal(t, []string{"inv-1"}, repo.orgCalls)
	assert.Empty(t, repo.unscopedCalls)
}

func TestGetHistory_EmployeeLimitedToOwnInvoices(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(nil, repo, nil, nil, nil)

	// Employee tokens carry the organization_id claim as well; a colleague in
	// the same organization still must not read someone else's log.
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":         "u-emp2",
		"email":           "colleague@paycycle.test",
		"employee_id":     "emp-2",
		"organization_id": "org-1",
		"role":            "employee",
	})

	_, err := svc.GetHistory(ctx, "inv-1", invoice.HistoryFilter{})

	require.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
	assert.Equal(t, []string{"inv-1"}, repo.employeeCalls)
	assert.Empty(t, repo.orgCalls)
}

func TestGetHistory_EmployeeOwnInvoice(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.entries = []invoice.HistoryEntry{
		{ID: "h-1", InvoiceID: "inv-1", Action: invoice.ActionCreated, Actor: "owner@paycycle.test", ActorRole: "organization"},
	}
	svc := NewInvoiceService(nil, repo, nil, nil, nil)

	ctx := claimsContext(t, map[string]interface{}{
		"user_id":         "u-emp1",
		"email":           "emp@paycycle.test",
		"employee_id":     "emp-1",
		"organization_id": "org-1",
		"role":            "employee",
	})

	res, err := svc.GetHistory(ctx, "inv-1", invoice.HistoryFilter{})

	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, invoice.ActionCreated, res.Data[0].Action)
	assert.Equal(t, []string{"inv-1"}, repo.employeeCalls)
}

func TestGetHistory_OrganizationScope(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := NewInvoiceService(nil, repo, nil, nil, nil)

	ctx := claimsContext(t, map[string]interface{}{
		"user_id":         "u-org",
		"email":           "owner@paycycle.test",
		"organization_id": "org-1",
		"role":            "organization",
	})

	_, err := svc.GetHistory(ctx, "inv-1", invoice.HistoryFilter{})

	require.NoError(t, err)
	assert.Equal(t, []string{"inv-1"}, repo.orgCalls)
	assert.Empty(t, repo.employeeCalls)
}
