package apiclient

import (
	"context"
	"net/http"

	"github.com/zenithlab/storefront-client/internal/models"
)

func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &out, "Failed to load profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, p models.Profile) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodPut, "/profile", nil, p, &out, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &out, nil
}
