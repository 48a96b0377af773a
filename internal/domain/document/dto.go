package document

import (
	"mime/multipart"

	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
)

type UploadDocumentRequest struct {
	Title      string  `json:"title"`
	EmployeeID *string `json:"employee_id,omitempty"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "file is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	FileName    string  `json:"file_name"`
	ContentType string  `json:"content_type"`
	SizeBytes   int64   `json:"size_bytes"`
	UploadedBy  string  `json:"uploaded_by"`
	CreatedAt   string  `json:"created_at"`
}

type DocumentFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Search     *string `json:"search,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

type ListDocumentResponse struct {
	Data       []DocumentResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
