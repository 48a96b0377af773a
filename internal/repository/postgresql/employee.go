package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/employee"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository instance
func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.organization_id, e.user_id, e.name, e.email, e.position,
		   e.status, e.currency_id, e.rate_type, e.rate, e.created_at, e.updated_at,
		   c.code AS currency_code,
		   bd.id IS NOT NULL AS has_bank_detail
	FROM employees e
	JOIN currencies c ON c.id = e.currency_id
	LEFT JOIN bank_details bd ON bd.employee_id = e.id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.OrganizationID, &emp.UserID, &emp.Name, &emp.Email, &emp.Position,
		&emp.Status, &emp.CurrencyID, &emp.RateType, &emp.Rate, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.CurrencyCode, &emp.HasBankDetail,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (organization_id, name, email, position, status, currency_id, rate_type, rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, organization_id, user_id, name, email, position, status,
				  currency_id, rate_type, rate, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		emp.OrganizationID, emp.Name, emp.Email, emp.Position,
		emp.Status, emp.CurrencyID, emp.RateType, emp.Rate,
	).Scan(
		&created.ID, &created.OrganizationID, &created.UserID, &created.Name,
		&created.Email, &created.Position, &created.Status, &created.CurrencyID,
		&created.RateType, &created.Rate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.id = $1 AND e.organization_id = $2`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.user_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE LOWER(e.email) = LOWER($1) AND e.organization_id = $2`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, organizationID string, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE e.organization_id = $1`
	args := []any{organizationID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND e.status = $%d", len(args))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		where += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.email ILIKE $%d)", len(args), len(args))
	}

	countQuery := `
		SELECT COUNT(*)
		FROM employees e
		JOIN currencies c ON c.id = e.currency_id
		LEFT JOIN bank_details bd ON bd.employee_id = e.id` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := employeeSelect + where +
		fmt.Sprintf(" ORDER BY e.name ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, total, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.organization_id = $1 AND e.status = 'active' ORDER BY e.name ASC`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, organizationID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = COALESCE($1, name),
			position = COALESCE($2, position),
			status = COALESCE($3, status),
			currency_id = COALESCE($4, currency_id),
			rate_type = COALESCE($5, rate_type),
			rate = COALESCE($6, rate),
			updated_at = NOW()
		WHERE id = $7 AND organization_id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Name, req.Position, req.Status, req.CurrencyID, req.RateType, req.Rate,
		req.ID, organizationID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// LinkUser implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LinkUser(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET user_id = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, userID, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to link employee user: %w", err)
	}

	return nil
}

// GetBankDetail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetBankDetail(ctx context.Context, employeeID string) (employee.BankDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, bank_name, account_name, account_number,
			   iban, swift_code, created_at, updated_at
		FROM bank_details
		WHERE employee_id = $1
	`

	var detail employee.BankDetail
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&detail.ID, &detail.EmployeeID, &detail.BankName, &detail.AccountName,
		&detail.AccountNumber, &detail.IBAN, &detail.SwiftCode,
		&detail.CreatedAt, &detail.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.BankDetail{}, employee.ErrBankDetailNotFound
		}
		return employee.BankDetail{}, fmt.Errorf("failed to get bank detail: %w", err)
	}

	return detail, nil
}

// UpsertBankDetail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpsertBankDetail(ctx context.Context, detail employee.BankDetail) (employee.BankDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bank_details (employee_id, bank_name, account_name, account_number, iban, swift_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE SET
			bank_name = EXCLUDED.bank_name,
			account_name = EXCLUDED.account_name,
			account_number = EXCLUDED.account_number,
			iban = EXCLUDED.iban,
			swift_code = EXCLUDED.swift_code,
			updated_at = NOW()
		RETURNING id, employee_id, bank_name, account_name, account_number,
				  iban, swift_code, created_at, updated_at
	`

	var saved employee.BankDetail
	err := q.QueryRow(ctx, query,
		detail.EmployeeID, detail.BankName, detail.AccountName,
		detail.AccountNumber, detail.IBAN, detail.SwiftCode,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.BankName, &saved.AccountName,
		&saved.AccountNumber, &saved.IBAN, &saved.SwiftCode,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return employee.BankDetail{}, fmt.Errorf("failed to upsert bank detail: %w", err)
	}

	return saved, nil
}
