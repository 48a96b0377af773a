package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/auth"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/employee"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/organization"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/user"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/email"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/jwt"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/oauth"
	"github.com/paycycle-hq/paycycle-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	orgRepo      organization.OrganizationRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	googleOAuth  *oauth.GoogleService
	emailService email.EmailService
	frontendURL  string
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	orgRepo organization.OrganizationRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleOAuth *oauth.GoogleService,
	emailService email.EmailService,
	frontendURL string,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		googleOAuth:  googleOAuth,
		emailService: emailService,
		frontendURL:  frontendURL,
	}
}

func formatUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC1123)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse
	var err error

	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(
		u.ID, u.Email, u.EmployeeID, u.OrganizationID, u.Role,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokens, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := a.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		org, err := a.orgRepo.Create(txCtx, organization.Organization{
			Name:  req.OrganizationName,
			Email: req.Email,
		})
		if err != nil {
			return err
		}

		created, err = a.userRepo.Create(txCtx, user.User{
			OrganizationID: &org.ID,
			Email:          req.Email,
			PasswordHash:   hash,
			Role:           user.RoleOrganization,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if userData.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// OAuthURLGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthURLGoogle(ctx context.Context) (string, error) {
	return a.googleOAuth.AuthCodeURL(oauth.GenerateState()), nil
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, state, code string) (auth.TokenResponse, error) {
	googleUser, err := a.googleOAuth.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	userData, err := a.userRepo.GetByEmail(ctx, googleUser.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrOAuthEmailNotFound
		}
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrInvalidRefreshToken
	}

	claims, err := a.jwtService.DecodeToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidRefreshToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidRefreshToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidRefreshToken
	}

	var res auth.AccessTokenResponse
	res.AccessToken, res.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(
		userData.ID, userData.Email, userData.EmployeeID, userData.OrganizationID, userData.Role,
	)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return res, nil
}

// ForgotPassword implements auth.AuthService.
// Always succeeds from the caller's perspective so email enumeration is not
// possible.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, expiresAt, err := a.jwtService.GenerateResetToken(userData.ID)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", a.frontendURL, token)
	return a.emailService.SendPasswordReset(userData.Email, resetLink, formatUnix(expiresAt))
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	claims, err := a.jwtService.DecodeToken(req.Token)
	if err != nil {
		return auth.ErrInvalidResetToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "reset" {
		return auth.ErrInvalidResetToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.ErrInvalidResetToken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.userRepo.UpdatePassword(ctx, userID, hash)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ := claims["user_id"].(string)
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	res := auth.MeResponse{
		ID:             userData.ID,
		Email:          userData.Email,
		Role:           string(userData.Role),
		OrganizationID: userData.OrganizationID,
		EmployeeID:     userData.EmployeeID,
	}

	switch userData.Role {
	case user.RoleOrganization:
		if userData.OrganizationID != nil {
			if org, err := a.orgRepo.GetByID(ctx, *userData.OrganizationID); err == nil {
				res.Name = org.Name
			}
		}
	case user.RoleEmployee:
		if emp, err := a.employeeRepo.GetByUserID(ctx, userData.ID); err == nil {
			res.Name = emp.Name
		}
	}

	return res, nil
}
