package organization

import "github.com/paycycle-hq/paycycle-backend-go/internal/pkg/validator"

type UpdateOrganizationRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrganizationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	LogoURL   *string `json:"logo_url,omitempty"`
	Address   *string `json:"address,omitempty"`
	CreatedAt string  `json:"created_at"`
}
