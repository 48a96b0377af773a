package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileTooLarge     = errors.New("file exceeds the size limit")
	ErrUnsupportedFile  = errors.New("unsupported file type")
)
