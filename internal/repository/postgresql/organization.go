package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/organization"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

// NewOrganizationRepository creates a new organization repository instance
func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

// Create implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (name, email, logo_path, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, logo_path, address, created_at, updated_at
	`

	var created organization.Organization
	err := q.QueryRow(ctx, query, org.Name, org.Email, org.LogoPath, org.Address).Scan(
		&created.ID, &created.Name, &created.Email, &created.LogoPath,
		&created.Address, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return organization.Organization{}, organization.ErrOrganizationExists
		}
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return created, nil
}

// GetByID implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, logo_path, address, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var org organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.Email, &org.LogoPath,
		&org.Address, &org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

// Update implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) Update(ctx context.Context, org organization.Organization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations
		SET name = $1, logo_path = $2, address = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, org.Name, org.LogoPath, org.Address, org.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to update organization: %w", err)
	}

	return nil
}

// List implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) List(ctx context.Context, page, limit int) ([]organization.Organization, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	query := `
		SELECT id, name, email, logo_path, address, created_at, updated_at
		FROM organizations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []organization.Organization
	for rows.Next() {
		var org organization.Organization
		err := rows.Scan(
			&org.ID, &org.Name, &org.Email, &org.LogoPath,
			&org.Address, &org.CreatedAt, &org.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, total, nil
}
