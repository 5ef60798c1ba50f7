package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/models"
)

// ProfilePage backs the profile view, profile edits and order history.
type ProfilePage struct {
	Deps
}

func (p *ProfilePage) Get(ctx context.Context) (*models.Profile, error) {
	if err := p.requireLogin("please login to view your profile"); err != nil {
		return nil, err
	}
	return p.API.Profile(ctx)
}

func (p *ProfilePage) Update(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if err := p.requireLogin("please login to update your profile"); err != nil {
		return nil, err
	}
	if profile.Email != "" && !validEmail(profile.Email) {
		return nil, fmt.Errorf("please enter a valid email address: %w", apperr.ErrValidation)
	}
	return p.API.UpdateProfile(ctx, profile)
}

func (p *ProfilePage) Orders(ctx context.Context) ([]models.Order, error) {
	if err := p.requireLogin("please login to view your orders"); err != nil {
		return nil, err
	}
	return p.API.Orders(ctx)
}

func (p *ProfilePage) Order(ctx context.Context, id int) (*models.Order, error) {
	if err := p.requireLogin("please login to view your orders"); err != nil {
		return nil, err
	}
	return p.API.OrderByID(ctx, id)
}
