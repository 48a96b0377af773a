package document

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/document"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/employee"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/storage"
)

const maxDocumentSize = 25 << 20 // 25 MB

var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/png":          true,
	"text/csv":           true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
}

type DocumentServiceImpl struct {
	documentRepo document.DocumentRepository
	employeeRepo employee.EmployeeRepository
	storage      storage.FileStorage
}

func NewDocumentService(documentRepo document.DocumentRepository, employeeRepo employee.EmployeeRepository, fileStorage storage.FileStorage) document.DocumentService {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
		storage:      fileStorage,
	}
}

func getClaimsFromContext(ctx context.Context) (organizationID, email string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, _ = claims["organization_id"].(string)
	email, _ = claims["email"].(string)
	if organizationID == "" {
		return "", "", fmt.Errorf("organization_id claim is missing or invalid")
	}

	return organizationID, email, nil
}

func (s *DocumentServiceImpl) UploadDocument(ctx context.Context, req document.UploadDocumentRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	organizationID, email, err := getClaimsFromContext(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID, organizationID); err != nil {
			return document.DocumentResponse{}, err
		}
	}

	if req.FileHeader.Size > maxDocumentSize {
		return document.DocumentResponse{}, document.ErrFileTooLarge
	}
	contentType := req.FileHeader.Header.Get("Content-Type")
	if !allowedDocumentTypes[strings.ToLower(contentType)] {
		return document.DocumentResponse{}, document.ErrUnsupportedFile
	}

	ext := filepath.Ext(req.FileHeader.Filename)
	path := fmt.Sprintf("documents/%s/%s%s", organizationID, uuid.NewString(), ext)

	storedPath, err := s.storage.Upload(ctx, req.File, path, contentType)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	doc, err := s.documentRepo.Create(ctx, document.Document{
		OrganizationID: organizationID,
		EmployeeID:     req.EmployeeID,
		Title:          req.Title,
		FileName:       req.FileHeader.Filename,
		FilePath:       storedPath,
		ContentType:    contentType,
		SizeBytes:      req.FileHeader.Size,
		UploadedBy:     email,
	})
	if err != nil {
		_ = s.storage.Delete(ctx, storedPath)
		return document.DocumentResponse{}, err
	}

	return mapToResponse(doc), nil
}

func (s *DocumentServiceImpl) ListDocuments(ctx context.Context, filter document.DocumentFilter) (document.ListDocumentResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return document.ListDocumentResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	docs, total, err := s.documentRepo.List(ctx, organizationID, filter)
	if err != nil {
		return document.ListDocumentResponse{}, err
	}

	data := make([]document.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		data = append(data, mapToResponse(doc))
	}

	return document.ListDocumentResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *DocumentServiceImpl) DownloadDocument(ctx context.Context, id string) (io.ReadCloser, document.Document, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, document.Document{}, err
	}

	doc, err := s.documentRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return nil, document.Document{}, err
	}

	reader, err := s.storage.Download(ctx, doc.FilePath)
	if err != nil {
		return nil, document.Document{}, document.ErrDocumentNotFound
	}

	return reader, doc, nil
}

func (s *DocumentServiceImpl) DeleteDocument(ctx context.Context, id string) error {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	doc, err := s.documentRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, doc.ID, organizationID); err != nil {
		return err
	}

	// Best effort; a missing blob is not worth failing the delete.
	_ = s.storage.Delete(ctx, doc.FilePath)
	return nil
}

func mapToResponse(doc document.Document) document.DocumentResponse {
	return document.DocumentResponse{
		ID:          doc.ID,
		Title:       doc.Title,
		EmployeeID:  doc.EmployeeID,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		UploadedBy:  doc.UploadedBy,
		CreatedAt:   doc.CreatedAt.Format(time.RFC3339),
	}
}
