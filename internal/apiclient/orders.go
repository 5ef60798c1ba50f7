package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zenithlab/storefront-client/internal/models"
)

// ShippingAddress is the checkout form payload. The server copies the rest
// of the order (items, totals) from the cart it already holds.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func (c *Client) CreateOrder(ctx context.Context, addr ShippingAddress) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, addr, &out, "Failed to create order"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out, "Failed to load orders"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OrderByID(ctx context.Context, id int) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.Itoa(id), nil, nil, &out, "Order not found"); err != nil {
		return nil, err
	}
	return &out, nil
}
