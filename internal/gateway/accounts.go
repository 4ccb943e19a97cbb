package gateway

import (
	"context"
	"fmt"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// Accounts covers registration, authentication, profile, and the
// staff-only user administration calls.
type Accounts struct {
	client *transport.Client
}

// NewAccounts creates the accounts gateway.
func NewAccounts(client *transport.Client) *Accounts {
	return &Accounts{client: client}
}

// AuthResponse is the credential-bearing response of login and
// registration.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// RegisterForm is the registration payload.
type RegisterForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

// Register creates an account and returns the issued credential.
func (g *Accounts) Register(ctx context.Context, form RegisterForm) (AuthResponse, error) {
	resp, err := g.client.Post(ctx, "/accounts/users/register/", form)
	if err != nil {
		return AuthResponse{}, err
	}
	return decodeOne[AuthResponse](resp)
}

// Login exchanges username and password for a credential.
func (g *Accounts) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	resp, err := g.client.Post(ctx, "/accounts/users/login/", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return AuthResponse{}, err
	}
	return decodeOne[AuthResponse](resp)
}

// Logout invalidates the credential on the backend.
func (g *Accounts) Logout(ctx context.Context) error {
	resp, err := g.client.Post(ctx, "/accounts/users/logout/", nil)
	if err != nil {
		return err
	}
	return discard(resp)
}

// Me fetches the profile behind the current credential.
func (g *Accounts) Me(ctx context.Context) (domain.User, error) {
	resp, err := g.client.Get(ctx, "/accounts/users/me/", nil)
	if err != nil {
		return domain.User{}, err
	}
	return decodeOne[domain.User](resp)
}

// ProfileForm is the editable slice of the profile.
type ProfileForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateProfile updates the current user's profile and returns the
// canonical record.
func (g *Accounts) UpdateProfile(ctx context.Context, form ProfileForm) (domain.User, error) {
	resp, err := g.client.Put(ctx, "/accounts/users/update_profile/", form)
	if err != nil {
		return domain.User{}, err
	}
	return decodeOne[domain.User](resp)
}

// ListUsers fetches all accounts (staff only).
func (g *Accounts) ListUsers(ctx context.Context) ([]domain.User, error) {
	resp, err := g.client.Get(ctx, "/accounts/users/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.User](resp)
}

// SetStaff flips one account's staff flag (staff only).
func (g *Accounts) SetStaff(ctx context.Context, userID int, isStaff bool) error {
	resp, err := g.client.Patch(ctx, fmt.Sprintf("/accounts/users/%d/", userID), map[string]bool{
		"is_staff": isStaff,
	})
	if err != nil {
		return err
	}
	return discard(resp)
}
