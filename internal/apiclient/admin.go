package apiclient

import (
	"context"
	"net/http"

	"github.com/zenithlab/storefront-client/internal/models"
)

func (c *Client) AllOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, nil, &out, "Failed to load orders"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllApplications(ctx context.Context) ([]models.JobApplication, error) {
	var out []models.JobApplication
	if err := c.do(ctx, http.MethodGet, "/admin/job-applications", nil, nil, &out, "Failed to load applications"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllInquiries(ctx context.Context) ([]models.SalesInquiry, error) {
	var out []models.SalesInquiry
	if err := c.do(ctx, http.MethodGet, "/admin/sales-inquiries", nil, nil, &out, "Failed to load inquiries"); err != nil {
		return nil, err
	}
	return out, nil
}
