package paycycle

import (
	"context"
	"io"
	"net/http"
	"strconv"
)

// UploadDocumentInput describes one document upload. EmployeeID scopes the
// document to an employee; empty means organization-wide.
type UploadDocumentInput struct {
	Title      string
	EmployeeID string
	FileName   string
	FileBody   io.Reader
}

func (c *Client) UploadDocument(ctx context.Context, in UploadDocumentInput) (Document, error) {
	fields := map[string]string{"title": in.Title}
	if in.EmployeeID != "" {
		fields["employee_id"] = in.EmployeeID
	}

	req, err := c.newMultipartRequest(ctx, "/organization/documents", fields, "file", in.FileName, in.FileBody)
	if err != nil {
		return Document{}, err
	}

	var out Document
	_, err = c.do(req, &out)
	return out, err
}

func (c *Client) ListDocuments(ctx context.Context, employeeID, search string, page, limit int) (DocumentList, error) {
	q := map[string]string{"employee_id": employeeID, "search": search}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out DocumentList
	_, err := c.get(ctx, "/organization/documents"+query(q), &out)
	return out, err
}

// DownloadDocument streams the document body. The caller must close the
// returned reader.
func (c *Client) DownloadDocument(ctx context.Context, documentID string) (io.ReadCloser, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/organization/documents/"+documentID, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, "", &APIError{Status: resp.StatusCode, Message: "document download failed"}
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	return c.delete(ctx, "/organization/documents/"+documentID)
}
