package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, id string, organizationID string) (Document, error)
	List(ctx context.Context, organizationID string, filter DocumentFilter) ([]Document, int64, error)
	Delete(ctx context.Context, id string, organizationID string) error
}
