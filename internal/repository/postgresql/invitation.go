package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invitation"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
)

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

const invitationSelect = `
	SELECT i.id, i.employee_id, i.organization_id, i.email, i.token, i.status,
		   i.expires_at, i.accepted_at, i.revoked_at, i.created_at, i.updated_at,
		   e.name AS employee_name, o.name AS organization_name
	FROM invitations i
	JOIN employees e ON e.id = i.employee_id
	JOIN organizations o ON o.id = i.organization_id`

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.EmployeeID, &inv.OrganizationID, &inv.Email, &inv.Token, &inv.Status,
		&inv.ExpiresAt, &inv.AcceptedAt, &inv.RevokedAt, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.EmployeeName, &inv.OrganizationName,
	)
	return inv, err
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (employee_id, organization_id, email, token, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, organization_id, email, token, status,
				  expires_at, accepted_at, revoked_at, created_at, updated_at
	`

	var created invitation.Invitation
	err := q.QueryRow(ctx, query,
		inv.EmployeeID, inv.OrganizationID, inv.Email, inv.Token, inv.Status, inv.ExpiresAt,
	).Scan(
		&created.ID, &created.EmployeeID, &created.OrganizationID, &created.Email,
		&created.Token, &created.Status, &created.ExpiresAt, &created.AcceptedAt,
		&created.RevokedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return created, nil
}

// GetByID implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := invitationSelect + ` WHERE i.id = $1 AND i.organization_id = $2`

	inv, err := scanInvitation(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// GetByToken implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := invitationSelect + ` WHERE i.token = $1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return inv, nil
}

// GetPendingByEmployee implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetPendingByEmployee(ctx context.Context, employeeID string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := invitationSelect + `
		WHERE i.employee_id = $1 AND i.status = 'pending' AND i.expires_at > NOW()
		ORDER BY i.created_at DESC
		LIMIT 1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get pending invitation: %w", err)
	}

	return inv, nil
}

// ListByOrganization implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string, page, limit int) ([]invitation.Invitation, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM invitations WHERE organization_id = $1`
	if err := q.QueryRow(ctx, countQuery, organizationID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invitations: %w", err)
	}

	query := invitationSelect + `
		WHERE i.organization_id = $1
		ORDER BY i.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := q.Query(ctx, query, organizationID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, total, nil
}

// UpdateStatus implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status invitation.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET status = $1,
			accepted_at = CASE WHEN $1 = 'accepted' THEN NOW() ELSE accepted_at END,
			revoked_at = CASE WHEN $1 = 'revoked' THEN NOW() ELSE revoked_at END,
			updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to update invitation status: %w", err)
	}

	return nil
}

// UpdateToken implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) UpdateToken(ctx context.Context, id string, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET token = $1, expires_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, token, expiresAt, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to update invitation token: %w", err)
	}

	return nil
}
