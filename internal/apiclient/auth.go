package apiclient

import (
	"context"
	"net/http"

	"github.com/zenithlab/storefront-client/internal/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", nil,
		LoginRequest{Username: username, Password: password}, &out,
		"Invalid username or password")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/register", nil, req, &out, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}
