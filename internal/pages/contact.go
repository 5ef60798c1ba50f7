package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/models"
)

// ContactPage backs the sales inquiry form.
type ContactPage struct {
	Deps
}

// Submit validates the inquiry locally and sends it. Validation failures
// never reach the network.
func (p *ContactPage) Submit(ctx context.Context, inq models.SalesInquiry) (*models.SalesInquiry, error) {
	if inq.ContactName == "" {
		return nil, fmt.Errorf("contact name is required: %w", apperr.ErrValidation)
	}
	if !validEmail(inq.Email) {
		return nil, fmt.Errorf("please enter a valid email address: %w", apperr.ErrValidation)
	}
	if inq.Phone != "" && !validPhone(inq.Phone) {
		return nil, fmt.Errorf("please enter a valid phone number: %w", apperr.ErrValidation)
	}
	if inq.Message == "" {
		return nil, fmt.Errorf("message is required: %w", apperr.ErrValidation)
	}
	return p.API.SubmitInquiry(ctx, inq)
}
