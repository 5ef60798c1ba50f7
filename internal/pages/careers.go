package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/models"
)

// CareersPage backs the job listings and the application form.
type CareersPage struct {
	Deps
}

func (p *CareersPage) Jobs(ctx context.Context) ([]models.Job, error) {
	return p.API.Jobs(ctx)
}

func (p *CareersPage) Job(ctx context.Context, id int) (*models.Job, error) {
	return p.API.JobByID(ctx, id)
}

// Apply validates the form locally and submits it. Validation failures never
// reach the network.
func (p *CareersPage) Apply(ctx context.Context, app models.JobApplication) (*models.JobApplication, error) {
	if app.JobID == 0 {
		return nil, fmt.Errorf("no job selected: %w", apperr.ErrValidation)
	}
	if app.ApplicantName == "" {
		return nil, fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}
	if !validEmail(app.Email) {
		return nil, fmt.Errorf("please enter a valid email address: %w", apperr.ErrValidation)
	}
	if app.Phone != "" && !validPhone(app.Phone) {
		return nil, fmt.Errorf("please enter a valid phone number: %w", apperr.ErrValidation)
	}
	if app.ResumeURL == "" {
		return nil, fmt.Errorf("resume link is required: %w", apperr.ErrValidation)
	}
	return p.API.SubmitApplication(ctx, app)
}
