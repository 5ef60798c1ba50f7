package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zenithlab/storefront-client/internal/models"
)

func (c *Client) Jobs(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, nil, &out, "Failed to load jobs"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) JobByID(ctx context.Context, id int) (*models.Job, error) {
	var out models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+strconv.Itoa(id), nil, nil, &out, "Job not found"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitApplication(ctx context.Context, app models.JobApplication) (*models.JobApplication, error) {
	var out models.JobApplication
	if err := c.do(ctx, http.MethodPost, "/job-applications", nil, app, &out, "Failed to submit application"); err != nil {
		return nil, err
	}
	return &out, nil
}
