package apiclient

import (
	"context"
	"net/http"

	"github.com/zenithlab/storefront-client/internal/models"
)

func (c *Client) SubmitInquiry(ctx context.Context, inq models.SalesInquiry) (*models.SalesInquiry, error) {
	var out models.SalesInquiry
	if err := c.do(ctx, http.MethodPost, "/sales-inquiries", nil, inq, &out, "Failed to submit inquiry"); err != nil {
		return nil, err
	}
	return &out, nil
}
