package invitation

import "errors"

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationRevoked  = errors.New("invitation has been revoked")
	ErrInvitationAccepted = errors.New("invitation has already been accepted")
	ErrInvitationPending  = errors.New("a pending invitation already exists for this employee")
	ErrEmployeeHasAccount = errors.New("employee already has an account")
)
