package organization

import "time"

// Organization is the tenant boundary. Every cycle, invoice, payment and
// employee row carries its organization's id.
type Organization struct {
	ID        string
	Name      string
	Email     string
	LogoPath  *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
