package invitation

import "context"

type InvitationService interface {
	InviteEmployee(ctx context.Context, req InviteEmployeeRequest) (InvitationResponse, error)
	ListInvitations(ctx context.Context, page, limit int) ([]InvitationResponse, int64, error)
	ResendInvitation(ctx context.Context, id string) (InvitationResponse, error)
	RevokeInvitation(ctx context.Context, id string) error

	// Public, token-scoped
	GetByToken(ctx context.Context, token string) (InvitationResponse, error)
	AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) error
}
