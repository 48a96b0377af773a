package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrOAuthEmailNotFound  = errors.New("no account exists for this google email")
)
