package organization

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/organization"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/storage"
)

type OrganizationServiceImpl struct {
	orgRepo organization.OrganizationRepository
	storage storage.FileStorage
}

func NewOrganizationService(orgRepo organization.OrganizationRepository, fileStorage storage.FileStorage) organization.OrganizationService {
	return &OrganizationServiceImpl{
		orgRepo: orgRepo,
		storage: fileStorage,
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

func (s *OrganizationServiceImpl) GetMyOrganization(ctx context.Context) (organization.OrganizationResponse, error) {
	organizationID, err := getClaimsFromContext(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	return s.mapToResponse(ctx, org), nil
}

func (s *OrganizationServiceImpl) UpdateMyOrganization(ctx context.Context, req organization.UpdateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	organizationID, err := getClaimsFromContext(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Address != nil {
		org.Address = req.Address
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return organization.OrganizationResponse{}, err
	}

	return s.mapToResponse(ctx, org), nil
}

// ========== ADMIN ==========

func (s *OrganizationServiceImpl) ListOrganizations(ctx context.Context, page, limit int) ([]organization.OrganizationResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	orgs, total, err := s.orgRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]organization.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		res = append(res, s.mapToResponse(ctx, org))
	}
	return res, total, nil
}

func (s *OrganizationServiceImpl) GetOrganization(ctx context.Context, id string) (organization.OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	return s.mapToResponse(ctx, org), nil
}

func (s *OrganizationServiceImpl) mapToResponse(ctx context.Context, org organization.Organization) organization.OrganizationResponse {
	res := organization.OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Email:     org.Email,
		Address:   org.Address,
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
	}

	if org.LogoPath != nil {
		if url, err := s.storage.GetURL(ctx, *org.LogoPath, 15*time.Minute); err == nil {
			res.LogoURL = &url
		}
	}

	return res
}
