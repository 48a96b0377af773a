package organization

import "context"

type OrganizationService interface {
	GetMyOrganization(ctx context.Context) (OrganizationResponse, error)
	UpdateMyOrganization(ctx context.Context, req UpdateOrganizationRequest) (OrganizationResponse, error)

	// Admin
	ListOrganizations(ctx context.Context, page, limit int) ([]OrganizationResponse, int64, error)
	GetOrganization(ctx context.Context, id string) (OrganizationResponse, error)
}
