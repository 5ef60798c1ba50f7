package pages

import (
	"context"

	"github.com/zenithlab/storefront-client/internal/apiclient"
	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/models"
)

// CatalogPage backs the product listing and product detail views.
type CatalogPage struct {
	Deps
}

// ProductView is a product annotated with the viewer's eligibility.
type ProductView struct {
	Product  models.Product
	LoggedIn bool
	CanBuy   bool
	Notice   string
}

func (p *CatalogPage) Products(ctx context.Context, filter apiclient.ProductFilter) ([]models.Product, error) {
	return p.API.Products(ctx, filter)
}

func (p *CatalogPage) Categories(ctx context.Context) ([]models.Category, error) {
	return p.API.Categories(ctx)
}

func (p *CatalogPage) Category(ctx context.Context, id int) (*models.Category, error) {
	return p.API.CategoryByID(ctx, id)
}

// ProductDetail fetches one product and evaluates the buyer restriction for
// the current session. A visitor who is not logged in sees the requirement
// notice but no verdict; eligibility is only decided against a known
// account type.
func (p *CatalogPage) ProductDetail(ctx context.Context, id int) (*ProductView, error) {
	product, err := p.API.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &ProductView{
		Product:  *product,
		LoggedIn: p.Session.IsLoggedIn(),
		CanBuy:   true,
		Notice:   domain.RequirementText(product.BuyerRequirement),
	}
	if view.LoggedIn {
		view.CanBuy = domain.CanPurchase(p.Session.AccountType(), product.BuyerRequirement)
	}
	return view, nil
}
