package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zenithlab/storefront-client/internal/domain"
)

func (c *Client) Cart(ctx context.Context) (*domain.CartPayload, error) {
	var out domain.CartPayload
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &out, "Failed to load cart"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddToCart(ctx context.Context, productID int) (*domain.CartPayload, error) {
	var out domain.CartPayload
	err := c.do(ctx, http.MethodPost, "/cart/products/"+strconv.Itoa(productID), nil, nil, &out,
		"Failed to add item to cart")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (c *Client) UpdateCartItem(ctx context.Context, productID, quantity int) (*domain.CartPayload, error) {
	var out domain.CartPayload
	err := c.do(ctx, http.MethodPut, "/cart/products/"+strconv.Itoa(productID), nil,
		updateCartRequest{Quantity: quantity}, &out, "Failed to update cart")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil, nil, "Failed to clear cart")
}
