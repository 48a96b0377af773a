package document

import "time"

// Document is stored file metadata. The bytes live in FileStorage; EmployeeID
// is nil for organization-wide documents.
type Document struct {
	ID             string
	OrganizationID string
	EmployeeID     *string
	Title          string
	FileName       string
	FilePath       string
	ContentType    string
	SizeBytes      int64
	UploadedBy     string
	CreatedAt      time.Time
}
