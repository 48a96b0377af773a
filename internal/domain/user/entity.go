package user

import "time"

// Role determines which route group a user may reach.
type Role string

const (
	// RoleAdmin is the platform operator.
	RoleAdmin Role = "admin"
	// RoleOrganization is an organization administrator.
	RoleOrganization Role = "organization"
	// RoleEmployee is an invited employee of an organization.
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganization, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID             string
	OrganizationID *string
	EmployeeID     *string
	Email          string
	PasswordHash   string
	Role           Role
	OAuthProvider  *string
	OAuthID        *string
	EmailVerified  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
