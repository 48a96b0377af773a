package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrOrganizationExists   = errors.New("an organization with this name already exists")
)
