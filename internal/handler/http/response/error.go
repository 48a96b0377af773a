package response

import (
	"errors"
	"net/http"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/auth"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/currency"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/document"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/employee"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invitation"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invoice"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/organization"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/payment"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/timesheet"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/user"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Illegal invoice status moves carry the offending states in the message.
	var transitionErr *invoice.TransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidResetToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrOrganizationExists):
		Conflict(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrBankDetailNotFound):
		NotFound(w, "Bank detail not found")

	// Currency domain errors
	case errors.Is(err, currency.ErrCurrencyNotFound):
		NotFound(w, "Currency not found")
	case errors.Is(err, currency.ErrCurrencyExists):
		Conflict(w, err.Error())

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Conflict(w, err.Error())
	case errors.Is(err, invitation.ErrInvitationRevoked):
		Conflict(w, err.Error())
	case errors.Is(err, invitation.ErrInvitationAccepted):
		Conflict(w, err.Error())
	case errors.Is(err, invitation.ErrInvitationPending):
		Conflict(w, err.Error())
	case errors.Is(err, invitation.ErrEmployeeHasAccount):
		Conflict(w, err.Error())

	// Invoice domain errors
	case errors.Is(err, invoice.ErrCycleNotFound):
		NotFound(w, "Invoice cycle not found")
	case errors.Is(err, invoice.ErrCycleExists):
		Conflict(w, err.Error())
	case errors.Is(err, invoice.ErrCycleNotCompletable):
		Conflict(w, err.Error())
	case errors.Is(err, invoice.ErrCycleCompleted):
		Conflict(w, err.Error())
	case errors.Is(err, invoice.ErrNoEligibleEmployees):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceNotEditable):
		Conflict(w, err.Error())
	case errors.Is(err, invoice.ErrInvoiceFullyPaid):
		Conflict(w, err.Error())
	case errors.Is(err, invoice.ErrOutstandingBalance):
		Conflict(w, err.Error())
	case errors.Is(err, invoice.ErrCommentRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, invoice.ErrItemNotFound):
		NotFound(w, "Invoice item not found")
	case errors.Is(err, invoice.ErrItemInUse):
		Conflict(w, err.Error())

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrExceedsRemaining):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, payment.ErrInvoiceNotPayable):
		Conflict(w, err.Error())
	case errors.Is(err, payment.ErrReceiptNotFound):
		NotFound(w, "Receipt not found")
	case errors.Is(err, payment.ErrReceiptTooLarge):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payment.ErrUnsupportedReceipt):
		BadRequest(w, err.Error(), nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetExists):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrTimesheetNotDraft):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrTimesheetNotPending):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrRejectCommentEmpty):
		BadRequest(w, err.Error(), nil)

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, document.ErrUnsupportedFile):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
