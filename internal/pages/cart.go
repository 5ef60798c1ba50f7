package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/logging"
)

// CartPage backs the shopping cart view and the nav cart badge.
type CartPage struct {
	Deps
}

// CartView is the normalized cart plus its order summary.
type CartView struct {
	Lines  []domain.CartLine
	Totals domain.Totals
}

func (p *CartPage) Load(ctx context.Context) (*CartView, error) {
	if err := p.requireLogin("please login to view your cart"); err != nil {
		return nil, err
	}
	payload, err := p.API.Cart(ctx)
	if err != nil {
		return nil, err
	}
	lines := domain.NormalizeCartItems(payload)
	return &CartView{
		Lines:  lines,
		Totals: domain.ComputeTotals(lines, domain.DefaultTaxRate),
	}, nil
}

// Add puts one unit of a product in the cart after checking the buyer
// restriction locally. The server enforces the same rule at checkout.
func (p *CartPage) Add(ctx context.Context, productID int) (*CartView, error) {
	if err := p.requireLogin("please login to add items to cart"); err != nil {
		return nil, err
	}

	product, err := p.API.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	acct := p.Session.AccountType()
	if !domain.CanPurchase(acct, product.BuyerRequirement) {
		return nil, fmt.Errorf("%s. Your account type does not allow purchasing this product. Contact sales for assistance: %w",
			domain.RequirementText(product.BuyerRequirement), apperr.ErrRestriction)
	}

	payload, err := p.API.AddToCart(ctx, productID)
	if err != nil {
		return nil, err
	}

	user, _ := p.Session.User()
	fields := map[string]any{"productID": productID}
	if user != nil {
		fields["userID"] = user.ID
	}
	p.publish(ctx, "add_to_cart", fields)

	lines := domain.NormalizeCartItems(payload)
	return &CartView{Lines: lines, Totals: domain.ComputeTotals(lines, domain.DefaultTaxRate)}, nil
}

// UpdateQuantity sets a line's quantity. A quantity below one removes the
// line; negative requests are forwarded as zero.
func (p *CartPage) UpdateQuantity(ctx context.Context, productID, quantity int) (*CartView, error) {
	if err := p.requireLogin("please login to update your cart"); err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 0
	}
	payload, err := p.API.UpdateCartItem(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	lines := domain.NormalizeCartItems(payload)
	return &CartView{Lines: lines, Totals: domain.ComputeTotals(lines, domain.DefaultTaxRate)}, nil
}

func (p *CartPage) Clear(ctx context.Context) error {
	if err := p.requireLogin("please login to view your cart"); err != nil {
		return err
	}
	return p.API.ClearCart(ctx)
}

// Badge returns the total unit count for the nav badge. It is best-effort:
// logged-out sessions and any fetch failure degrade to zero, never to an
// error.
func (p *CartPage) Badge(ctx context.Context) int {
	if !p.Session.IsLoggedIn() {
		return 0
	}
	payload, err := p.API.Cart(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug("cart_badge_error", "error", err)
		return 0
	}
	return domain.CountItems(domain.NormalizeCartItems(payload))
}
