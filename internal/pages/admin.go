package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/models"
)

// AdminPage backs the read-only back-office listings.
type AdminPage struct {
	Deps
}

func (p *AdminPage) requireAdmin() error {
	if err := p.requireLogin("admin access required"); err != nil {
		return err
	}
	if !p.Session.IsAdmin() {
		return fmt.Errorf("admin access required: %w", apperr.ErrAuthRequired)
	}
	return nil
}

func (p *AdminPage) Orders(ctx context.Context) ([]models.Order, error) {
	if err := p.requireAdmin(); err != nil {
		return nil, err
	}
	return p.API.AllOrders(ctx)
}

func (p *AdminPage) Applications(ctx context.Context) ([]models.JobApplication, error) {
	if err := p.requireAdmin(); err != nil {
		return nil, err
	}
	return p.API.AllApplications(ctx)
}

func (p *AdminPage) Inquiries(ctx context.Context) ([]models.SalesInquiry, error) {
	if err := p.requireAdmin(); err != nil {
		return nil, err
	}
	return p.API.AllInquiries(ctx)
}
