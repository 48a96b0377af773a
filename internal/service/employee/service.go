package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/currency"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	currencyRepo currency.CurrencyRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, currencyRepo currency.CurrencyRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		currencyRepo: currencyRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (organizationID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, _ = claims["organization_id"].(string)
	employeeID, _ = claims["employee_id"].(string)

	return organizationID, employeeID, nil
}

// ========== ORGANIZATION ==========

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.employeeRepo.GetByEmail(ctx, email, organizationID); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	// Reject unknown currencies up front instead of surfacing an FK error.
	cur, err := s.currencyRepo.GetByID(ctx, req.CurrencyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.Create(ctx, employee.Employee{
		OrganizationID: organizationID,
		Name:           req.Name,
		Email:          email,
		Position:       req.Position,
		Status:         employee.StatusActive,
		CurrencyID:     cur.ID,
		RateType:       req.RateType,
		Rate:           req.Rate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.CurrencyCode = &cur.Code
	return mapToResponse(emp, nil), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	employees, total, err := s.employeeRepo.List(ctx, organizationID, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapToResponse(emp, nil))
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.withBankDetail(ctx, emp)
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.CurrencyID != nil {
		if _, err := s.currencyRepo.GetByID(ctx, *req.CurrencyID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, organizationID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID, organizationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.withBankDetail(ctx, emp)
}

func (s *EmployeeServiceImpl) UpsertBankDetail(ctx context.Context, req employee.UpsertBankDetailRequest) (employee.BankDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.BankDetailResponse{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.BankDetailResponse{}, err
	}

	// Ownership check before touching the bank detail row.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, organizationID); err != nil {
		return employee.BankDetailResponse{}, err
	}

	return s.upsertBankDetail(ctx, req)
}

// ========== EMPLOYEE ==========

func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	organizationID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if employeeID == "" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, organizationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.withBankDetail(ctx, emp)
}

func (s *EmployeeServiceImpl) UpsertMyBankDetail(ctx context.Context, req employee.UpsertBankDetailRequest) (employee.BankDetailResponse, error) {
	_, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.BankDetailResponse{}, err
	}
	if employeeID == "" {
		return employee.BankDetailResponse{}, employee.ErrEmployeeNotFound
	}

	req.EmployeeID = employeeID
	if err := req.Validate(); err != nil {
		return employee.BankDetailResponse{}, err
	}

	return s.upsertBankDetail(ctx, req)
}

// ========== HELPERS ==========

func (s *EmployeeServiceImpl) upsertBankDetail(ctx context.Context, req employee.UpsertBankDetailRequest) (employee.BankDetailResponse, error) {
	detail, err := s.employeeRepo.UpsertBankDetail(ctx, employee.BankDetail{
		EmployeeID:    req.EmployeeID,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		IBAN:          req.IBAN,
		SwiftCode:     req.SwiftCode,
	})
	if err != nil {
		return employee.BankDetailResponse{}, err
	}

	return mapBankDetail(detail), nil
}

func (s *EmployeeServiceImpl) withBankDetail(ctx context.Context, emp employee.Employee) (employee.EmployeeResponse, error) {
	detail, err := s.employeeRepo.GetBankDetail(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, employee.ErrBankDetailNotFound) {
			return mapToResponse(emp, nil), nil
		}
		return employee.EmployeeResponse{}, err
	}

	bd := mapBankDetail(detail)
	return mapToResponse(emp, &bd), nil
}

func mapToResponse(emp employee.Employee, detail *employee.BankDetailResponse) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Email:         emp.Email,
		Position:      emp.Position,
		Status:        emp.Status,
		CurrencyID:    emp.CurrencyID,
		CurrencyCode:  emp.CurrencyCode,
		RateType:      emp.RateType,
		Rate:          emp.Rate,
		HasBankDetail: emp.HasBankDetail || detail != nil,
		BankDetail:    detail,
		CreatedAt:     emp.CreatedAt.Format(time.RFC3339),
	}
}

func mapBankDetail(detail employee.BankDetail) employee.BankDetailResponse {
	return employee.BankDetailResponse{
		ID:            detail.ID,
		EmployeeID:    detail.EmployeeID,
		BankName:      detail.BankName,
		AccountName:   detail.AccountName,
		AccountNumber: detail.AccountNumber,
		IBAN:          detail.IBAN,
		SwiftCode:     detail.SwiftCode,
	}
}
