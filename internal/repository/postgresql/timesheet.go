package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/timesheet"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

// NewTimesheetRepository creates a new timesheet repository instance
func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetSelect = `
	SELECT t.id, t.employee_id, t.organization_id, t.week_start, t.status,
		   t.review_comment, t.created_at, t.updated_at,
		   e.name AS employee_name,
		   COALESCE(SUM(te.hours), 0) AS total_hours
	FROM timesheets t
	JOIN employees e ON e.id = t.employee_id
	LEFT JOIN timesheet_entries te ON te.timesheet_id = t.id`

const timesheetGroup = ` GROUP BY t.id, e.name`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := row.Scan(
		&ts.ID, &ts.EmployeeID, &ts.OrganizationID, &ts.WeekStart, &ts.Status,
		&ts.ReviewComment, &ts.CreatedAt, &ts.UpdatedAt,
		&ts.EmployeeName, &ts.TotalHours,
	)
	return ts, err
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet, entries []timesheet.Entry) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (employee_id, organization_id, week_start, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, organization_id, week_start, status,
				  review_comment, created_at, updated_at
	`

	var created timesheet.Timesheet
	err := q.QueryRow(ctx, query, ts.EmployeeID, ts.OrganizationID, ts.WeekStart, ts.Status).Scan(
		&created.ID, &created.EmployeeID, &created.OrganizationID, &created.WeekStart,
		&created.Status, &created.ReviewComment, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetExists
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	if err := r.insertEntries(ctx, created.ID, entries); err != nil {
		return timesheet.Timesheet{}, err
	}

	return created, nil
}

func (r *timesheetRepositoryImpl) insertEntries(ctx context.Context, timesheetID string, entries []timesheet.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_entries (timesheet_id, entry_date, hours, task_title, task_description)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, entry := range entries {
		_, err := q.Exec(ctx, query, timesheetID, entry.Date, entry.Hours, entry.TaskTitle, entry.TaskDescription)
		if err != nil {
			return fmt.Errorf("failed to insert timesheet entry: %w", err)
		}
	}

	return nil
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := timesheetSelect + ` WHERE t.id = $1 AND t.organization_id = $2` + timesheetGroup

	ts, err := scanTimesheet(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	return ts, nil
}

// GetForEmployee implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetForEmployee(ctx context.Context, id string, employeeID string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := timesheetSelect + ` WHERE t.id = $1 AND t.employee_id = $2` + timesheetGroup

	ts, err := scanTimesheet(q.QueryRow(ctx, query, id, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet for employee: %w", err)
	}

	return ts, nil
}

// GetByWeek implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByWeek(ctx context.Context, employeeID string, weekStart time.Time) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := timesheetSelect + ` WHERE t.employee_id = $1 AND t.week_start = $2` + timesheetGroup

	ts, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, weekStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet by week: %w", err)
	}

	return ts, nil
}

func (r *timesheetRepositoryImpl) list(ctx context.Context, where string, args []any, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, int64, error) {
	q := GetQuerier(ctx, r.db)

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND t.status = $%d", len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(" AND t.employee_id = $%d", len(args))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		where += fmt.Sprintf(" AND e.name ILIKE $%d", len(args))
	}

	countQuery := `
		SELECT COUNT(*)
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count timesheets: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := timesheetSelect + where + timesheetGroup +
		fmt.Sprintf(" ORDER BY t.week_start DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, ts)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return timesheets, total, nil
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context, organizationID string, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, int64, error) {
	return r.list(ctx, ` WHERE t.organization_id = $1`, []any{organizationID}, filter)
}

// ListByEmployee implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, int64, error) {
	return r.list(ctx, ` WHERE t.employee_id = $1`, []any{employeeID}, filter)
}

// ReplaceEntries implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ReplaceEntries(ctx context.Context, timesheetID string, entries []timesheet.Entry) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE timesheet_id = $1`, timesheetID); err != nil {
		return fmt.Errorf("failed to clear timesheet entries: %w", err)
	}

	return r.insertEntries(ctx, timesheetID, entries)
}

// GetEntries implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetEntries(ctx context.Context, timesheetID string) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, timesheet_id, entry_date, hours, task_title, task_description, created_at
		FROM timesheet_entries
		WHERE timesheet_id = $1
		ORDER BY entry_date ASC
	`

	rows, err := q.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var entry timesheet.Entry
		err := rows.Scan(
			&entry.ID, &entry.TimesheetID, &entry.Date, &entry.Hours,
			&entry.TaskTitle, &entry.TaskDescription, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// UpdateStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) UpdateStatus(ctx context.Context, id string, status timesheet.Status, comment *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = $1, review_comment = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, comment, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to update timesheet status: %w", err)
	}

	return nil
}

// SumApprovedHours implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) SumApprovedHours(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(te.hours), 0)
		FROM timesheet_entries te
		JOIN timesheets t ON t.id = te.timesheet_id
		WHERE t.employee_id = $1
		  AND t.status = 'approved'
		  AND te.entry_date >= $2
		  AND te.entry_date < $3
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved hours: %w", err)
	}

	return sum, nil
}
