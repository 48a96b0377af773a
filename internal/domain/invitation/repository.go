package invitation

import (
	"context"
	"time"
)

type InvitationRepository interface {
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	GetByID(ctx context.Context, id string, organizationID string) (Invitation, error)
	GetByToken(ctx context.Context, token string) (Invitation, error)
	GetPendingByEmployee(ctx context.Context, employeeID string) (Invitation, error)
	ListByOrganization(ctx context.Context, organizationID string, page, limit int) ([]Invitation, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateToken(ctx context.Context, id string, token string, expiresAt time.Time) error
}
