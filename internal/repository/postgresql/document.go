package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/document"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

// NewDocumentRepository creates a new document repository instance
func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `id, organization_id, employee_id, title, file_name, file_path,
	content_type, size_bytes, uploaded_by, created_at`

func scanDocument(row pgx.Row) (document.Document, error) {
	var doc document.Document
	err := row.Scan(
		&doc.ID, &doc.OrganizationID, &doc.EmployeeID, &doc.Title, &doc.FileName,
		&doc.FilePath, &doc.ContentType, &doc.SizeBytes, &doc.UploadedBy, &doc.CreatedAt,
	)
	return doc, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (organization_id, employee_id, title, file_name, file_path, content_type, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query,
		doc.OrganizationID, doc.EmployeeID, doc.Title, doc.FileName,
		doc.FilePath, doc.ContentType, doc.SizeBytes, doc.UploadedBy,
	))
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND organization_id = $2`

	doc, err := scanDocument(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context, organizationID string, filter document.DocumentFilter) ([]document.Document, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE organization_id = $1`
	args := []any{organizationID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		where += fmt.Sprintf(" AND (title ILIKE $%d OR file_name ILIKE $%d)", len(args), len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM documents`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `SELECT ` + documentColumns + ` FROM documents` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, total, nil
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}
