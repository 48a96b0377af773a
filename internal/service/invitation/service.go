package invitation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/employee"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invitation"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/organization"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/user"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/email"
	"github.com/paycycle-hq/paycycle-backend-go/internal/repository/postgresql"
)

const invitationTTL = 7 * 24 * time.Hour

type InvitationServiceImpl struct {
	db             *database.DB
	invitationRepo invitation.InvitationRepository
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	orgRepo        organization.OrganizationRepository
	emailService   email.EmailService
	frontendURL    string
}

func NewInvitationService(
	db *database.DB,
	invitationRepo invitation.InvitationRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	orgRepo organization.OrganizationRepository,
	emailService email.EmailService,
	frontendURL string,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		db:             db,
		invitationRepo: invitationRepo,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		emailService:   emailService,
		frontendURL:    frontendURL,
	}
}

func getClaimsFromContext(ctx context.Context) (organizationID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, _ = claims["organization_id"].(string)
	if organizationID == "" {
		return "", fmt.Errorf("organization_id claim is missing or invalid")
	}

	return organizationID, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ========== ORGANIZATION ==========

func (s *InvitationServiceImpl) InviteEmployee(ctx context.Context, req invitation.InviteEmployeeRequest) (invitation.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.InvitationResponse{}, err
	}

	organizationID, err := getClaimsFromContext(ctx)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, organizationID)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}
	if emp.UserID != nil {
		return invitation.InvitationResponse{}, invitation.ErrEmployeeHasAccount
	}

	if pending, err := s.invitationRepo.GetPendingByEmployee(ctx, emp.ID); err == nil {
		if pending.CanBeAccepted() {
			return invitation.InvitationResponse{}, invitation.ErrInvitationPending
		}
	} else if !errors.Is(err, invitation.ErrInvitationNotFound) {
		return invitation.InvitationResponse{}, err
	}

	token, err := generateToken()
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	inv, err := s.invitationRepo.Create(ctx, invitation.Invitation{
		EmployeeID:     emp.ID,
		OrganizationID: organizationID,
		Email:          emp.Email,
		Token:          token,
		Status:         invitation.StatusPending,
		ExpiresAt:      time.Now().UTC().Add(invitationTTL),
	})
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	if err := s.sendInvitationEmail(ctx, emp, organizationID, token, inv.ExpiresAt); err != nil {
		return invitation.InvitationResponse{}, err
	}

	inv.EmployeeName = &emp.Name
	return mapToResponse(inv), nil
}

func (s *InvitationServiceImpl) sendInvitationEmail(ctx context.Context, emp employee.Employee, organizationID, token string, expiresAt time.Time) error {
	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/invitations/accept?token=%s", s.frontendURL, token)
	return s.emailService.SendInvitation(emp.Email, emp.Name, org.Name, link, expiresAt.Format(time.RFC1123))
}

func (s *InvitationServiceImpl) ListInvitations(ctx context.Context, page, limit int) ([]invitation.InvitationResponse, int64, error) {
	organizationID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	invitations, total, err := s.invitationRepo.ListByOrganization(ctx, organizationID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]invitation.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		res = append(res, mapToResponse(inv))
	}
	return res, total, nil
}

func (s *InvitationServiceImpl) ResendInvitation(ctx context.Context, id string) (invitation.InvitationResponse, error) {
	organizationID, err := getClaimsFromContext(ctx)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	inv, err := s.invitationRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}
	switch inv.Status {
	case invitation.StatusAccepted:
		return invitation.InvitationResponse{}, invitation.ErrInvitationAccepted
	case invitation.StatusRevoked:
		return invitation.InvitationResponse{}, invitation.ErrInvitationRevoked
	}

	// A resend rotates the token, invalidating the previous link.
	token, err := generateToken()
	if err != nil {
		return invitation.InvitationResponse{}, err
	}
	expiresAt := time.Now().UTC().Add(invitationTTL)

	if err := s.invitationRepo.UpdateToken(ctx, inv.ID, token, expiresAt); err != nil {
		return invitation.InvitationResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, inv.EmployeeID, organizationID)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}
	if err := s.sendInvitationEmail(ctx, emp, organizationID, token, expiresAt); err != nil {
		return invitation.InvitationResponse{}, err
	}

	inv.Token = token
	inv.ExpiresAt = expiresAt
	return mapToResponse(inv), nil
}

func (s *InvitationServiceImpl) RevokeInvitation(ctx context.Context, id string) error {
	organizationID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	inv, err := s.invitationRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if inv.Status == invitation.StatusAccepted {
		return invitation.ErrInvitationAccepted
	}

	return s.invitationRepo.UpdateStatus(ctx, inv.ID, invitation.StatusRevoked)
}

// ========== PUBLIC ==========

func (s *InvitationServiceImpl) GetByToken(ctx context.Context, token string) (invitation.InvitationResponse, error) {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}
	if err := checkAcceptable(inv); err != nil {
		return invitation.InvitationResponse{}, err
	}

	return mapToResponse(inv), nil
}

func (s *InvitationServiceImpl) AcceptInvitation(ctx context.Context, req invitation.AcceptInvitationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	inv, err := s.invitationRepo.GetByToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if err := checkAcceptable(inv); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		u, err := s.userRepo.Create(txCtx, user.User{
			OrganizationID: &inv.OrganizationID,
			EmployeeID:     &inv.EmployeeID,
			Email:          inv.Email,
			PasswordHash:   string(hash),
			Role:           user.RoleEmployee,
			EmailVerified:  true,
		})
		if err != nil {
			return err
		}

		if err := s.employeeRepo.LinkUser(txCtx, inv.EmployeeID, u.ID); err != nil {
			return err
		}

		return s.invitationRepo.UpdateStatus(txCtx, inv.ID, invitation.StatusAccepted)
	})
}

func checkAcceptable(inv invitation.Invitation) error {
	switch inv.Status {
	case invitation.StatusAccepted:
		return invitation.ErrInvitationAccepted
	case invitation.StatusRevoked:
		return invitation.ErrInvitationRevoked
	}
	if inv.IsExpired() {
		return invitation.ErrInvitationExpired
	}
	return nil
}

func mapToResponse(inv invitation.Invitation) invitation.InvitationResponse {
	return invitation.InvitationResponse{
		ID:               inv.ID,
		EmployeeID:       inv.EmployeeID,
		EmployeeName:     inv.EmployeeName,
		OrganizationName: inv.OrganizationName,
		Email:            inv.Email,
		Status:           inv.Status,
		ExpiresAt:        inv.ExpiresAt.Format(time.RFC3339),
		CreatedAt:        inv.CreatedAt.Format(time.RFC3339),
	}
}
