package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apiclient"
	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/logging"
	"github.com/zenithlab/storefront-client/internal/models"
)

// AuthPage backs login, registration and logout.
type AuthPage struct {
	Deps
}

func (p *AuthPage) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperr.ErrValidation)
	}

	resp, err := p.API.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := p.Session.SetToken(resp.Token); err != nil {
		return nil, err
	}
	if err := p.Session.SetUser(resp.User); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("logged_in", "username", resp.User.Username)
	return &resp.User, nil
}

func (p *AuthPage) Register(ctx context.Context, username, password, confirm string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperr.ErrValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("passwords do not match: %w", apperr.ErrValidation)
	}
	return p.API.Register(ctx, apiclient.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	})
}

// Logout clears the local session. The server-side cart is left intact; only
// the badge resets because the next fetch is unauthenticated.
func (p *AuthPage) Logout(ctx context.Context) error {
	if err := p.Session.Logout(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("logged_out")
	return nil
}
