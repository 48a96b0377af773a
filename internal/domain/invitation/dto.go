package invitation

import "github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"

type InviteEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *InviteEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AcceptInvitationRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *AcceptInvitationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{Field: "token", Message: "token is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters long"})
	}
	if r.ConfirmPassword != r.Password {
		errs = append(errs, validator.ValidationError{Field: "confirm_password", Message: "password and confirm_password do not match"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvitationResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	OrganizationName *string `json:"organization_name,omitempty"`
	Email            string  `json:"email"`
	Status           Status  `json:"status"`
	ExpiresAt        string  `json:"expires_at"`
	CreatedAt        string  `json:"created_at"`
}
