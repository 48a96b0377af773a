package document

import (
	"context"
	"io"
)

type DocumentService interface {
	UploadDocument(ctx context.Context, req UploadDocumentRequest) (DocumentResponse, error)
	ListDocuments(ctx context.Context, filter DocumentFilter) (ListDocumentResponse, error)
	DownloadDocument(ctx context.Context, id string) (io.ReadCloser, Document, error)
	DeleteDocument(ctx context.Context, id string) error
}
