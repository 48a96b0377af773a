package payment

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invoice"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/user"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/storage"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
	"github.com/paycycle-hq/paycycle-backend-go/internal/repository/postgresql"
)

const maxReceiptSize = 10 << 20 // 10 MB

var allowedReceiptTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
}

type PaymentServiceImpl struct {
	db          *database.DB
	paymentRepo payment.PaymentRepository
	invoiceRepo invoice.InvoiceRepository
	storage     storage.FileStorage
}

func NewPaymentService(
	db *database.DB,
	paymentRepo payment.PaymentRepository,
	invoiceRepo invoice.InvoiceRepository,
	fileStorage storage.FileStorage,
) payment.PaymentService {
	return &PaymentServiceImpl{
		db:          db,
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		storage:     fileStorage,
	}
}

func getClaimsFromContext(ctx context.Context) (organizationID, employeeID, email, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, _ = claims["organization_id"].(string)
	employeeID, _ = claims["employee_id"].(string)
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)
	if organizationID == "" {
		return "", "", "", "", fmt.Errorf("organization_id claim is missing or invalid")
	}

	return organizationID, employeeID, email, role, nil
}

// scopeInvoice loads the invoice through the lens of the caller: employees
// only reach their own invoices, organizations anything within the tenant.
func (s *PaymentServiceImpl) scopeInvoice(ctx context.Context, invoiceID, organizationID, employeeID, role string) (invoice.EmployeeInvoice, error) {
	if role == string(user.RoleEmployee) && employeeID != "" {
		return s.invoiceRepo.GetInvoiceForEmployee(ctx, invoiceID, employeeID)
	}
	return s.invoiceRepo.GetInvoiceByID(ctx, invoiceID, organizationID)
}

// ========== PAYMENTS ==========

func (s *PaymentServiceImpl) RecordPayment(ctx context.Context, req payment.RecordPaymentRequest) (payment.RecordPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.RecordPaymentResponse{}, err
	}

	organizationID, _, email, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payment.RecordPaymentResponse{}, err
	}

	inv, err := s.invoiceRepo.GetInvoiceByID(ctx, req.InvoiceID, organizationID)
	if err != nil {
		return payment.RecordPaymentResponse{}, err
	}
	if inv.Status != invoice.StatusInvoiced {
		return payment.RecordPaymentResponse{}, payment.ErrInvoiceNotPayable
	}

	paid, err := s.paymentRepo.SumPaymentsByInvoice(ctx, inv.ID)
	if err != nil {
		return payment.RecordPaymentResponse{}, err
	}
	remaining := inv.PayableAmount.Sub(paid)
	if req.Amount.GreaterThan(remaining) {
		return payment.RecordPaymentResponse{}, payment.ErrExceedsRemaining
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != nil {
		if t, ok := validator.IsValidDateTime(*req.PaidAt); ok {
			paidAt = t
		}
	}

	var receiptPath *string
	if req.Receipt != nil && req.ReceiptHeader != nil {
		path, err := s.storeReceipt(ctx, organizationID, req.Receipt, req.ReceiptHeader.Filename, req.ReceiptHeader.Size, req.ReceiptHeader.Header.Get("Content-Type"))
		if err != nil {
			return payment.RecordPaymentResponse{}, err
		}
		receiptPath = &path
	}

	var created payment.Payment
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.paymentRepo.CreatePayment(txCtx, payment.Payment{
			InvoiceID:      inv.ID,
			OrganizationID: organizationID,
			Amount:         req.Amount,
			PaidAt:         paidAt,
			Note:           req.Note,
			ReceiptPath:    receiptPath,
			RecordedBy:     email,
		})
		if err != nil {
			return err
		}

		comment := fmt.Sprintf("payment of %s recorded", req.Amount.StringFixed(2))
		return s.invoiceRepo.AppendHistory(txCtx, invoice.HistoryEntry{
			InvoiceID: inv.ID,
			Action:    invoice.ActionPaymentRecorded,
			Actor:     email,
			ActorRole: role,
			Comment:   &comment,
		})
	})
	if err != nil {
		if receiptPath != nil {
			// Orphaned receipt cleanup; the payment row never landed.
			_ = s.storage.Delete(ctx, *receiptPath)
		}
		return payment.RecordPaymentResponse{}, err
	}

	res, err := s.mapToResponse(ctx, created)
	if err != nil {
		return payment.RecordPaymentResponse{}, err
	}

	return payment.RecordPaymentResponse{
		Payment:         res,
		PaidAmount:      paid.Add(req.Amount),
		RemainingAmount: remaining.Sub(req.Amount),
	}, nil
}

func (s *PaymentServiceImpl) storeReceipt(ctx context.Context, organizationID string, file io.Reader, filename string, size int64, contentType string) (string, error) {
	if size > maxReceiptSize {
		return "", payment.ErrReceiptTooLarge
	}
	if !allowedReceiptTypes[strings.ToLower(contentType)] {
		return "", payment.ErrUnsupportedReceipt
	}

	ext := filepath.Ext(filename)
	path := fmt.Sprintf("receipts/%s/%s%s", organizationID, uuid.NewString(), ext)

	return s.storage.Upload(ctx, file, path, contentType)
}

func (s *PaymentServiceImpl) ListPayments(ctx context.Context, invoiceID string, filter payment.PaymentFilter) (payment.ListPaymentResponse, error) {
	organizationID, employeeID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payment.ListPaymentResponse{}, err
	}

	// Scope check before exposing the payment list.
	if _, err := s.scopeInvoice(ctx, invoiceID, organizationID, employeeID, role); err != nil {
		return payment.ListPaymentResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	payments, total, err := s.paymentRepo.ListPaymentsByInvoice(ctx, invoiceID, filter)
	if err != nil {
		return payment.ListPaymentResponse{}, err
	}

	data := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		res, err := s.mapToResponse(ctx, p)
		if err != nil {
			return payment.ListPaymentResponse{}, err
		}
		data = append(data, res)
	}

	return payment.ListPaymentResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PaymentServiceImpl) DownloadReceipt(ctx context.Context, paymentID string) (io.ReadCloser, string, error) {
	organizationID, _, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, "", err
	}

	p, err := s.paymentRepo.GetPaymentByID(ctx, paymentID, organizationID)
	if err != nil {
		return nil, "", err
	}
	if p.ReceiptPath == nil {
		return nil, "", payment.ErrReceiptNotFound
	}

	reader, err := s.storage.Download(ctx, *p.ReceiptPath)
	if err != nil {
		return nil, "", payment.ErrReceiptNotFound
	}

	return reader, filepath.Base(*p.ReceiptPath), nil
}

func (s *PaymentServiceImpl) mapToResponse(ctx context.Context, p payment.Payment) (payment.PaymentResponse, error) {
	res := payment.PaymentResponse{
		ID:         p.ID,
		InvoiceID:  p.InvoiceID,
		Amount:     p.Amount,
		PaidAt:     p.PaidAt.Format(time.RFC3339),
		Note:       p.Note,
		RecordedBy: p.RecordedBy,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}

	if p.ReceiptPath != nil {
		url, err := s.storage.GetURL(ctx, *p.ReceiptPath, 15*time.Minute)
		if err != nil {
			return payment.PaymentResponse{}, err
		}
		res.ReceiptURL = &url
	}

	return res, nil
}
