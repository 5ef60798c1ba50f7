package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/zenithlab/storefront-client/internal/models"
)

// ProductFilter mirrors the catalog's query parameters. Zero values are
// omitted from the request.
type ProductFilter struct {
	Cat      int
	MinPrice float64
	MaxPrice float64
	Color    string
}

func (f ProductFilter) query() url.Values {
	q := url.Values{}
	if f.Cat > 0 {
		q.Set("cat", strconv.Itoa(f.Cat))
	}
	if f.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Color != "" {
		q.Set("color", f.Color)
	}
	return q
}

func (c *Client) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", filter.query(), nil, &out, "Failed to load products"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, nil, &out, "Product not found"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompareProducts(ctx context.Context, ids []int) ([]models.Product, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	q := url.Values{}
	q.Set("ids", strings.Join(parts, ","))

	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/compare", q, nil, &out, "Failed to compare products"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out, "Failed to load categories"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CategoryByID(ctx context.Context, id int) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, nil, &out, "Category not found"); err != nil {
		return nil, err
	}
	return &out, nil
}
