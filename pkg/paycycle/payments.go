package paycycle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
)

func errAmountNotPositive() *APIError {
	return &APIError{
		Status:      422,
		Code:        "VALIDATION_ERROR",
		Message:     "Validation failed",
		FieldErrors: map[string]string{"amount": "must be greater than zero"},
	}
}

// RecordPaymentInput describes one payment against an invoiced invoice.
// Attach a receipt by setting ReceiptName and ReceiptBody.
type RecordPaymentInput struct {
	Amount decimal.Decimal
	PaidAt string // RFC3339, optional
	Note   string

	ReceiptName string
	ReceiptBody io.Reader
}

// RecordPayment posts a payment. The amount must be positive; that check
// runs before any network call. With a receipt attached the request goes up
// as multipart, otherwise as JSON.
func (c *Client) RecordPayment(ctx context.Context, invoiceID string, in RecordPaymentInput) (RecordPaymentResult, error) {
	if !in.Amount.IsPositive() {
		return RecordPaymentResult{}, errAmountNotPositive()
	}

	var out RecordPaymentResult

	if in.ReceiptBody == nil {
		body := map[string]any{"amount": in.Amount}
		if in.PaidAt != "" {
			body["paid_at"] = in.PaidAt
		}
		if in.Note != "" {
			body["note"] = in.Note
		}
		err := c.post(ctx, "/organization/payments/"+invoiceID, body, &out)
		return out, err
	}

	fields := map[string]string{"amount": in.Amount.String()}
	if in.PaidAt != "" {
		fields["paid_at"] = in.PaidAt
	}
	if in.Note != "" {
		fields["note"] = in.Note
	}

	req, err := c.newMultipartRequest(ctx, "/organization/payments/"+invoiceID, fields, "receipt", in.ReceiptName, in.ReceiptBody)
	if err != nil {
		return RecordPaymentResult{}, err
	}

	_, err = c.do(req, &out)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context, invoiceID string, page, limit int) (PaymentList, error) {
	q := map[string]string{}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out PaymentList
	_, err := c.get(ctx, "/organization/payments/"+invoiceID+query(q), &out)
	return out, err
}

// ListMyPayments reads the payments against one of the caller's own
// invoices.
func (c *Client) ListMyPayments(ctx context.Context, invoiceID string, page, limit int) (PaymentList, error) {
	q := map[string]string{}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out PaymentList
	_, err := c.get(ctx, "/employee/payments/"+invoiceID+query(q), &out)
	return out, err
}

// DownloadReceipt streams a payment receipt. The caller must close the
// returned reader.
func (c *Client) DownloadReceipt(ctx context.Context, paymentID string) (io.ReadCloser, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/organization/receipts/"+paymentID, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		if resp.StatusCode == http.StatusForbidden && c.onForbidden != nil {
			c.onForbidden()
		}

		apiErr := &APIError{Status: resp.StatusCode, Message: "receipt download failed"}
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.FieldErrors = env.Error.Details
		}
		return nil, "", apiErr
	}

	filename := "receipt"
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}

	return resp.Body, filename, nil
}

// newMultipartRequest builds a multipart POST with the given form fields and
// one file part. The part's content type is inferred from the file name.
func (c *Client) newMultipartRequest(ctx context.Context, path string, fields map[string]string, fileField, fileName string, fileBody io.Reader) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, fileBody); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return req, nil
}
