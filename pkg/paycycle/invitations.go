package paycycle

import (
	"context"
	"strconv"
)

func (c *Client) InviteEmployee(ctx context.Context, employeeID string) (Invitation, error) {
	body := map[string]string{"employee_id": employeeID}
	var out Invitation
	err := c.post(ctx, "/organization/invitations", body, &out)
	return out, err
}

func (c *Client) ListInvitations(ctx context.Context, page, limit int) ([]Invitation, *Meta, error) {
	q := map[string]string{}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out []Invitation
	meta, err := c.get(ctx, "/organization/invitations"+query(q), &out)
	return out, meta, err
}

func (c *Client) ResendInvitation(ctx context.Context, invitationID string) (Invitation, error) {
	var out Invitation
	err := c.put(ctx, "/organization/invitations/"+invitationID+"/resend", nil, &out)
	return out, err
}

func (c *Client) RevokeInvitation(ctx context.Context, invitationID string) error {
	return c.delete(ctx, "/organization/invitations/"+invitationID)
}

// GetInvitation resolves a public invitation token, no auth required.
func (c *Client) GetInvitation(ctx context.Context, token string) (Invitation, error) {
	var out Invitation
	_, err := c.get(ctx, "/auth/invitations/"+token, &out)
	return out, err
}

// AcceptInvitation claims the invitation and creates the employee login.
func (c *Client) AcceptInvitation(ctx context.Context, token, password, confirmPassword string) error {
	body := map[string]string{
		"password":         password,
		"confirm_password": confirmPassword,
	}
	return c.post(ctx, "/auth/invitations/"+token+"/accept", body, nil)
}
