package paycycle

import "context"

type Tokens struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type Me struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	OrganizationID *string `json:"organization_id,omitempty"`
	EmployeeID     *string `json:"employee_id,omitempty"`
}

type RegisterInput struct {
	OrganizationName string `json:"organization_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirm_password"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (Tokens, error) {
	var out Tokens
	err := c.post(ctx, "/auth/register", in, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (Tokens, error) {
	body := map[string]string{"email": email, "password": password}
	var out Tokens
	err := c.post(ctx, "/auth/login", body, &out)
	return out, err
}

// Refresh exchanges a refresh token for a fresh access token. The server
// also accepts the token via cookie; this client always sends it in the
// body.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var out Tokens
	err := c.post(ctx, "/auth/refresh", body, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (Me, error) {
	var out Me
	_, err := c.get(ctx, "/auth/me", &out)
	return out, err
}
