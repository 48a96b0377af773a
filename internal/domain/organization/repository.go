package organization

import "context"

type OrganizationRepository interface {
	Create(ctx context.Context, org Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	Update(ctx context.Context, org Organization) error
	List(ctx context.Context, page, limit int) ([]Organization, int64, error)
}
