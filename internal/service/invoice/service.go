package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/employee"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invoice"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/timesheet"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/user"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/paycycle-hq/paycycle-backend-go/internal/repository/postgresql"
)

type InvoiceServiceImpl struct {
	db            *database.DB
	invoiceRepo   invoice.InvoiceRepository
	employeeRepo  employee.EmployeeRepository
	paymentRepo   payment.PaymentRepository
	timesheetRepo timesheet.TimesheetRepository
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	employeeRepo employee.EmployeeRepository,
	paymentRepo payment.PaymentRepository,
	timesheetRepo timesheet.TimesheetRepository,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		db:            db,
		invoiceRepo:   invoiceRepo,
		employeeRepo:  employeeRepo,
		paymentRepo:   paymentRepo,
		timesheetRepo: timesheetRepo,
	}
}

// Helper to pull identity out of the JWT context.
func getClaimsFromContext(ctx context.Context) (organizationID, employeeID, email, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, _ = claims["organization_id"].(string)
	employeeID, _ = claims["employee_id"].(string)
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)

	return organizationID, employeeID, email, role, nil
}

func requireOrganization(ctx context.Context) (organizationID, email, role string, err error) {
	organizationID, _, email, role, err = getClaimsFromContext(ctx)
	if err != nil {
		return "", "", "", err
	}
	if organizationID == "" {
		return "", "", "", fmt.Errorf("organization_id claim is missing or invalid")
	}
	return organizationID, email, role, nil
}

func requireEmployee(ctx context.Context) (employeeID, email, role string, err error) {
	_, employeeID, email, role, err = getClaimsFromContext(ctx)
	if err != nil {
		return "", "", "", err
	}
	if employeeID == "" {
		return "", "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, email, role, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// ========== CYCLES ==========

func (s *InvoiceServiceImpl) CreateCycle(ctx context.Context, req invoice.CreateCycleRequest) (invoice.CreateCycleResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.CreateCycleResponse{}, err
	}

	organizationID, email, role, err := requireOrganization(ctx)
	if err != nil {
		return invoice.CreateCycleResponse{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx, organizationID)
	if err != nil {
		return invoice.CreateCycleResponse{}, err
	}

	var eligible []employee.Employee
	var missing []invoice.MissingBankDetail
	for _, emp := range employees {
		if !emp.HasBankDetail {
			missing = append(missing, invoice.MissingBankDetail{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				Email:      emp.Email,
			})
			continue
		}
		eligible = append(eligible, emp)
	}

	if len(eligible) == 0 {
		return invoice.CreateCycleResponse{}, invoice.ErrNoEligibleEmployees
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	var cycle invoice.Cycle
	var generated int

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		cycle, err = s.invoiceRepo.CreateCycle(txCtx, invoice.Cycle{
			OrganizationID: organizationID,
			Month:          req.Month,
			Year:           req.Year,
			Status:         invoice.CycleStatusCreated,
		})
		if err != nil {
			return err
		}

		for _, emp := range eligible {
			gross, err := s.grossAmountFor(txCtx, emp, periodStart, periodEnd)
			if err != nil {
				return err
			}

			inv, err := s.invoiceRepo.CreateInvoice(txCtx, invoice.EmployeeInvoice{
				CycleID:         cycle.ID,
				OrganizationID:  organizationID,
				EmployeeID:      emp.ID,
				CurrencyID:      emp.CurrencyID,
				GrossAmount:     gross,
				TotalAdditions:  decimal.Zero,
				TotalDeductions: decimal.Zero,
				PayableAmount:   gross,
				Status:          invoice.StatusCreated,
			})
			if err != nil {
				return err
			}

			err = s.invoiceRepo.AppendHistory(txCtx, invoice.HistoryEntry{
				InvoiceID: inv.ID,
				Action:    invoice.ActionCreated,
				Actor:     email,
				ActorRole: role,
			})
			if err != nil {
				return err
			}
			generated++
		}

		return nil
	})
	if err != nil {
		return invoice.CreateCycleResponse{}, err
	}

	if missing == nil {
		missing = []invoice.MissingBankDetail{}
	}

	return invoice.CreateCycleResponse{
		Cycle:              mapCycleToResponse(cycle),
		GeneratedInvoices:  generated,
		MissingBankDetails: missing,
	}, nil
}

// grossAmountFor derives the invoice gross: flat monthly rate, or hourly
// rate times approved timesheet hours within the period.
func (s *InvoiceServiceImpl) grossAmountFor(ctx context.Context, emp employee.Employee, periodStart, periodEnd time.Time) (decimal.Decimal, error) {
	if emp.RateType == employee.RateMonthly {
		return emp.Rate, nil
	}

	hours, err := s.timesheetRepo.SumApprovedHours(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return decimal.Zero, err
	}
	return emp.Rate.Mul(hours).Round(2), nil
}

func (s *InvoiceServiceImpl) ListCycles(ctx context.Context, filter invoice.CycleFilter) (invoice.ListCycleResponse, error) {
	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return invoice.ListCycleResponse{}, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	cycles, total, err := s.invoiceRepo.ListCycles(ctx, organizationID, filter)
	if err != nil {
		return invoice.ListCycleResponse{}, err
	}

	data := make([]invoice.CycleResponse, 0, len(cycles))
	for _, c := range cycles {
		data = append(data, mapCycleToResponse(c))
	}

	return invoice.ListCycleResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *InvoiceServiceImpl) GetCycleBreakdown(ctx context.Context, cycleID string) (invoice.CycleBreakdownResponse, error) {
	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return invoice.CycleBreakdownResponse{}, err
	}

	cycle, err := s.invoiceRepo.GetCycleByID(ctx, cycleID, organizationID)
	if err != nil {
		return invoice.CycleBreakdownResponse{}, err
	}

	totals, err := s.invoiceRepo.GetCycleTotals(ctx, cycleID, organizationID)
	if err != nil {
		return invoice.CycleBreakdownResponse{}, err
	}

	return invoice.CycleBreakdownResponse{
		Cycle:            mapCycleToResponse(cycle),
		StatusCounts:     totals.StatusCounts,
		TotalPayable:     totals.TotalPayable,
		TotalPaid:        totals.TotalPaid,
		TotalOutstanding: totals.TotalPayable.Sub(totals.TotalPaid),
	}, nil
}

func (s *InvoiceServiceImpl) CompleteCycle(ctx context.Context, cycleID string) (invoice.CycleResponse, error) {
	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return invoice.CycleResponse{}, err
	}

	cycle, err := s.invoiceRepo.GetCycleByID(ctx, cycleID, organizationID)
	if err != nil {
		return invoice.CycleResponse{}, err
	}
	if cycle.Status == invoice.CycleStatusCompleted {
		return invoice.CycleResponse{}, invoice.ErrCycleCompleted
	}

	open, err := s.invoiceRepo.CountOpenInvoices(ctx, cycleID, organizationID)
	if err != nil {
		return invoice.CycleResponse{}, err
	}
	if open > 0 {
		return invoice.CycleResponse{}, invoice.ErrCycleNotCompletable
	}

	if err := s.invoiceRepo.UpdateCycleStatus(ctx, cycleID, organizationID, invoice.CycleStatusCompleted); err != nil {
		return invoice.CycleResponse{}, err
	}

	cycle.Status = invoice.CycleStatusCompleted
	return mapCycleToResponse(cycle), nil
}

// ========== INVOICES (ORGANIZATION) ==========

func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, filter invoice.InvoiceFilter) (invoice.ListEmployeeInvoiceResponse, error) {
	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return invoice.ListEmployeeInvoiceResponse{}, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	invoices, total, err := s.invoiceRepo.ListInvoices(ctx, organizationID, filter)
	if err != nil {
		return invoice.ListEmployeeInvoiceResponse{}, err
	}

	return s.mapInvoiceList(ctx, invoices, total, filter)
}

func (s *InvoiceServiceImpl) mapInvoiceList(ctx context.Context, invoices []invoice.EmployeeInvoice, total int64, filter invoice.InvoiceFilter) (invoice.ListEmployeeInvoiceResponse, error) {
	data := make([]invoice.EmployeeInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		paid, err := s.paymentRepo.SumPaymentsByInvoice(ctx, inv.ID)
		if err != nil {
			return invoice.ListEmployeeInvoiceResponse{}, err
		}
		data = append(data, mapInvoiceToResponse(inv, paid, nil))
	}

	return invoice.ListEmployeeInvoiceResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *InvoiceServiceImpl) getInvoiceResponse(ctx context.Context, inv invoice.EmployeeInvoice) (invoice.EmployeeInvoiceResponse, error) {
	paid, err := s.paymentRepo.SumPaymentsByInvoice(ctx, inv.ID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	lines, err := s.invoiceRepo.GetExtraAmounts(ctx, inv.ID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return mapInvoiceToResponse(inv, paid, lines), nil
}

func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceByID(ctx, id, organizationID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

func (s *InvoiceServiceImpl) EditInvoice(ctx context.Context, req invoice.EditInvoiceRequest) (invoice.EmployeeInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	organizationID, email, role, err := requireOrganization(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceByID(ctx, req.ID, organizationID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}
	if !invoice.Editable(inv.Status) {
		return invoice.EmployeeInvoiceResponse{}, invoice.ErrInvoiceNotEditable
	}

	lines, err := s.resolveLines(ctx, organizationID, inv.ID, req.ExtraAmounts)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	if req.GrossAmount != nil {
		inv.GrossAmount = *req.GrossAmount
	}

	totals := invoice.ComputeTotals(inv.GrossAmount, lines)
	inv.TotalAdditions = totals.Additions
	inv.TotalDeductions = totals.Deductions
	inv.PayableAmount = totals.Payable

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.invoiceRepo.ReplaceExtraAmounts(txCtx, inv.ID, lines); err != nil {
			return err
		}
		if err := s.invoiceRepo.UpdateInvoiceAmounts(txCtx, inv); err != nil {
			return err
		}
		return s.invoiceRepo.AppendHistory(txCtx, invoice.HistoryEntry{
			InvoiceID: inv.ID,
			Action:    invoice.ActionEdited,
			Actor:     email,
			ActorRole: role,
		})
	})
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

// resolveLines maps edit inputs to stored lines. Lines referencing a catalog
// item inherit its kind; ad-hoc lines carry their own.
func (s *InvoiceServiceImpl) resolveLines(ctx context.Context, organizationID, invoiceID string, inputs []invoice.ExtraAmountInput) ([]invoice.ExtraAmount, error) {
	lines := make([]invoice.ExtraAmount, 0, len(inputs))
	for _, in := range inputs {
		line := invoice.ExtraAmount{
			InvoiceID: invoiceID,
			Amount:    in.Amount.Abs(),
			IsPercent: in.IsPercent,
		}

		if in.ExtraAmountID != nil {
			item, err := s.invoiceRepo.GetItemByID(ctx, *in.ExtraAmountID, organizationID)
			if err != nil {
				return nil, err
			}
			line.ExtraAmountID = &item.ID
			line.Kind = item.Kind
		} else {
			line.Kind = *in.Kind
		}

		lines = append(lines, line)
	}
	return lines, nil
}

// transition moves an invoice to the target status inside a transaction,
// appending the matching history entry. The caller has already loaded and
// authorized the invoice.
func (s *InvoiceServiceImpl) transition(ctx context.Context, inv invoice.EmployeeInvoice, to invoice.Status, action string, comment *string, actor, role string) (invoice.EmployeeInvoice, error) {
	if !invoice.CanTransition(inv.Status, to) {
		return invoice.EmployeeInvoice{}, &invoice.TransitionError{From: inv.Status, To: to}
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.invoiceRepo.UpdateInvoiceStatus(txCtx, inv.ID, to, comment); err != nil {
			return err
		}
		return s.invoiceRepo.AppendHistory(txCtx, invoice.HistoryEntry{
			InvoiceID: inv.ID,
			Action:    action,
			Actor:     actor,
			ActorRole: role,
			Comment:   comment,
		})
	})
	if err != nil {
		return invoice.EmployeeInvoice{}, err
	}

	inv.Status = to
	inv.Comment = comment
	return inv, nil
}

// invoiceForOperator loads the invoice for the caller driving it through the
// workflow. Organization callers stay scoped to their tenant; the platform
// admin carries no organization claim and reads across tenants.
func (s *InvoiceServiceImpl) invoiceForOperator(ctx context.Context, id string) (invoice.EmployeeInvoice, string, string, error) {
	organizationID, _, email, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return invoice.EmployeeInvoice{}, "", "", err
	}

	if role == string(user.RoleAdmin) {
		inv, err := s.invoiceRepo.GetInvoiceUnscoped(ctx, id)
		return inv, email, role, err
	}

	if organizationID == "" {
		return invoice.EmployeeInvoice{}, "", "", fmt.Errorf("organization_id claim is missing or invalid")
	}
	inv, err := s.invoiceRepo.GetInvoiceByID(ctx, id, organizationID)
	return inv, email, role, err
}

func (s *InvoiceServiceImpl) orgTransition(ctx context.Context, id string, to invoice.Status, action string) (invoice.EmployeeInvoiceResponse, error) {
	inv, email, role, err := s.invoiceForOperator(ctx, id)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err = s.transition(ctx, inv, to, action, nil, email, role)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

func (s *InvoiceServiceImpl) ApproveInvoice(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	return s.orgTransition(ctx, id, invoice.StatusApproved, invoice.ActionApproved)
}

func (s *InvoiceServiceImpl) ResolveChangeRequest(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	organizationID, email, role, err := requireOrganization(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceByID(ctx, id, organizationID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}
	if inv.Status != invoice.StatusChangeRequested {
		return invoice.EmployeeInvoiceResponse{}, &invoice.TransitionError{From: inv.Status, To: invoice.StatusApproved}
	}

	inv, err = s.transition(ctx, inv, invoice.StatusApproved, invoice.ActionResolved, nil, email, role)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

func (s *InvoiceServiceImpl) ReissueInvoice(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	organizationID, email, role, err := requireOrganization(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceByID(ctx, id, organizationID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}
	if inv.Status != invoice.StatusChangeRequested {
		return invoice.EmployeeInvoiceResponse{}, &invoice.TransitionError{From: inv.Status, To: invoice.StatusCreated}
	}

	inv, err = s.transition(ctx, inv, invoice.StatusCreated, invoice.ActionReissued, nil, email, role)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

func (s *InvoiceServiceImpl) MarkInvoiced(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	return s.orgTransition(ctx, id, invoice.StatusInvoiced, invoice.ActionInvoiced)
}

func (s *InvoiceServiceImpl) MarkPaid(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	inv, email, role, err := s.invoiceForOperator(ctx, id)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	paid, err := s.paymentRepo.SumPaymentsByInvoice(ctx, inv.ID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}
	if paid.LessThan(inv.PayableAmount) {
		return invoice.EmployeeInvoiceResponse{}, invoice.ErrOutstandingBalance
	}

	inv, err = s.transition(ctx, inv, invoice.StatusPaid, invoice.ActionPaid, nil, email, role)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

func (s *InvoiceServiceImpl) VoidInvoice(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	organizationID, email, role, err := requireOrganization(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceByID(ctx, id, organizationID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	paid, err := s.paymentRepo.SumPaymentsByInvoice(ctx, inv.ID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}
	if inv.PayableAmount.IsPositive() && paid.GreaterThanOrEqual(inv.PayableAmount) {
		return invoice.EmployeeInvoiceResponse{}, invoice.ErrInvoiceFullyPaid
	}

	inv, err = s.transition(ctx, inv, invoice.StatusVoided, invoice.ActionVoided, nil, email, role)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

// ========== INVOICES (EMPLOYEE) ==========

func (s *InvoiceServiceImpl) ListMyInvoices(ctx context.Context, filter invoice.InvoiceFilter) (invoice.ListEmployeeInvoiceResponse, error) {
	employeeID, _, _, err := requireEmployee(ctx)
	if err != nil {
		return invoice.ListEmployeeInvoiceResponse{}, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	invoices, total, err := s.invoiceRepo.ListInvoicesByEmployee(ctx, employeeID, filter)
	if err != nil {
		return invoice.ListEmployeeInvoiceResponse{}, err
	}

	return s.mapInvoiceList(ctx, invoices, total, filter)
}

func (s *InvoiceServiceImpl) GetMyInvoice(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	employeeID, _, _, err := requireEmployee(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceForEmployee(ctx, id, employeeID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

func (s *InvoiceServiceImpl) SubmitInvoice(ctx context.Context, id string) (invoice.EmployeeInvoiceResponse, error) {
	employeeID, email, role, err := requireEmployee(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceForEmployee(ctx, id, employeeID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err = s.transition(ctx, inv, invoice.StatusSubmitted, invoice.ActionSubmitted, nil, email, role)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

func (s *InvoiceServiceImpl) RequestInvoiceChanges(ctx context.Context, req invoice.ChangeRequestRequest) (invoice.EmployeeInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	employeeID, email, role, err := requireEmployee(ctx)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceForEmployee(ctx, req.ID, employeeID)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}
	if inv.Status != invoice.StatusSubmitted && inv.Status != invoice.StatusApproved {
		return invoice.EmployeeInvoiceResponse{}, &invoice.TransitionError{From: inv.Status, To: invoice.StatusChangeRequested}
	}

	comment := req.Comment
	inv, err = s.transition(ctx, inv, invoice.StatusChangeRequested, invoice.ActionChangeRequested, &comment, email, role)
	if err != nil {
		return invoice.EmployeeInvoiceResponse{}, err
	}

	return s.getInvoiceResponse(ctx, inv)
}

// ========== CATALOG ITEMS ==========

func (s *InvoiceServiceImpl) CreateItem(ctx context.Context, req invoice.CreateItemRequest) (invoice.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.ItemResponse{}, err
	}

	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return invoice.ItemResponse{}, err
	}

	item, err := s.invoiceRepo.CreateItem(ctx, invoice.ExtraAmountItem{
		OrganizationID: organizationID,
		Title:          req.Title,
		Kind:           req.Kind,
	})
	if err != nil {
		return invoice.ItemResponse{}, err
	}

	return mapItemToResponse(item), nil
}

func (s *InvoiceServiceImpl) ListItems(ctx context.Context) ([]invoice.ItemResponse, error) {
	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.invoiceRepo.ListItems(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	res := make([]invoice.ItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, mapItemToResponse(item))
	}
	return res, nil
}

func (s *InvoiceServiceImpl) UpdateItem(ctx context.Context, req invoice.UpdateItemRequest) (invoice.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.ItemResponse{}, err
	}

	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return invoice.ItemResponse{}, err
	}

	if err := s.invoiceRepo.UpdateItem(ctx, organizationID, req); err != nil {
		return invoice.ItemResponse{}, err
	}

	item, err := s.invoiceRepo.GetItemByID(ctx, req.ID, organizationID)
	if err != nil {
		return invoice.ItemResponse{}, err
	}

	return mapItemToResponse(item), nil
}

func (s *InvoiceServiceImpl) DeleteItem(ctx context.Context, id string) error {
	organizationID, _, _, err := requireOrganization(ctx)
	if err != nil {
		return err
	}

	refs, err := s.invoiceRepo.CountItemReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return invoice.ErrItemInUse
	}

	return s.invoiceRepo.DeleteItem(ctx, id, organizationID)
}

// ========== HISTORY ==========

func (s *InvoiceServiceImpl) GetHistory(ctx context.Context, invoiceID string, filter invoice.HistoryFilter) (invoice.ListHistoryResponse, error) {
	organizationID, employeeID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return invoice.ListHistoryResponse{}, err
	}

	// Scope the lookup to the caller before exposing the log. Employee tokens
	// carry organization_id too, so the role decides which lookup applies.
	switch {
	case role == string(user.RoleEmployee) && employeeID != "":
		if _, err := s.invoiceRepo.GetInvoiceForEmployee(ctx, invoiceID, employeeID); err != nil {
			return invoice.ListHistoryResponse{}, err
		}
	case organizationID != "":
		if _, err := s.invoiceRepo.GetInvoiceByID(ctx, invoiceID, organizationID); err != nil {
			return invoice.ListHistoryResponse{}, err
		}
	default:
		return invoice.ListHistoryResponse{}, invoice.ErrInvoiceNotFound
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	entries, total, err := s.invoiceRepo.ListHistory(ctx, invoiceID, filter)
	if err != nil {
		return invoice.ListHistoryResponse{}, err
	}

	data := make([]invoice.HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, invoice.HistoryEntryResponse{
			ID:        entry.ID,
			InvoiceID: entry.InvoiceID,
			Action:    entry.Action,
			Actor:     entry.Actor,
			ActorRole: entry.ActorRole,
			Comment:   entry.Comment,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return invoice.ListHistoryResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== MAPPERS ==========

func mapCycleToResponse(c invoice.Cycle) invoice.CycleResponse {
	return invoice.CycleResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Month:          c.Month,
		Year:           c.Year,
		Status:         c.Status,
		InvoiceCount:   c.InvoiceCount,
		TotalPayable:   c.TotalPayable,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func mapInvoiceToResponse(inv invoice.EmployeeInvoice, paid decimal.Decimal, lines []invoice.ExtraAmount) invoice.EmployeeInvoiceResponse {
	remaining := inv.PayableAmount.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	res := invoice.EmployeeInvoiceResponse{
		ID:              inv.ID,
		CycleID:         inv.CycleID,
		EmployeeID:      inv.EmployeeID,
		EmployeeName:    inv.EmployeeName,
		EmployeeEmail:   inv.EmployeeEmail,
		CurrencyCode:    inv.CurrencyCode,
		Month:           inv.Month,
		Year:            inv.Year,
		GrossAmount:     inv.GrossAmount,
		TotalAdditions:  inv.TotalAdditions,
		TotalDeductions: inv.TotalDeductions,
		PayableAmount:   inv.PayableAmount,
		PaidAmount:      paid,
		RemainingAmount: remaining,
		Status:          inv.Status,
		Comment:         inv.Comment,
		CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       inv.UpdatedAt.Format(time.RFC3339),
	}

	for _, line := range lines {
		res.ExtraAmounts = append(res.ExtraAmounts, invoice.ExtraAmountResponse{
			ID:            line.ID,
			ExtraAmountID: line.ExtraAmountID,
			Title:         line.Title,
			Kind:          line.Kind,
			Amount:        line.Amount,
			IsPercent:     line.IsPercent,
		})
	}

	return res
}

func mapItemToResponse(item invoice.ExtraAmountItem) invoice.ItemResponse {
	return invoice.ItemResponse{
		ID:        item.ID,
		Title:     item.Title,
		Kind:      item.Kind,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}
