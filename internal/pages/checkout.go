package pages

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/zenithlab/storefront-client/internal/apiclient"
	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/logging"
	"github.com/zenithlab/storefront-client/internal/models"
)

// CheckoutPage drives order placement: cart review, the buyer-restriction
// gate, and the submit action with a single-flight guard.
type CheckoutPage struct {
	Deps

	mu         sync.Mutex
	submitting bool
}

// CheckoutView is everything the review screen renders.
type CheckoutView struct {
	Lines   []domain.CartLine
	Totals  domain.Totals
	Profile models.Profile
}

// Load fetches cart and profile and runs the restriction check so the user
// sees offending items before trying to place the order.
func (p *CheckoutPage) Load(ctx context.Context) (*CheckoutView, error) {
	if err := p.requireLogin("please login to check out"); err != nil {
		return nil, err
	}

	payload, err := p.API.Cart(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := p.API.Profile(ctx)
	if err != nil {
		return nil, err
	}

	lines := domain.NormalizeCartItems(payload)
	if len(lines) == 0 {
		return nil, fmt.Errorf("your cart is empty: %w", apperr.ErrValidation)
	}

	view := &CheckoutView{
		Lines:   lines,
		Totals:  domain.ComputeTotals(lines, domain.DefaultTaxRate),
		Profile: *profile,
	}
	if err := CheckRestrictions(profile.AccountType, lines); err != nil {
		return view, err
	}
	return view, nil
}

// CheckRestrictions evaluates every cart line against the account type and
// reports all offending products at once, with the contact-sales call to
// action the storefront shows.
func CheckRestrictions(acct domain.Account, lines []domain.CartLine) error {
	var restricted []string
	for _, l := range lines {
		if !domain.CanPurchase(acct, l.Requirement) {
			restricted = append(restricted, l.Name)
		}
	}
	if len(restricted) == 0 {
		return nil
	}
	return fmt.Errorf("your account type (%s) cannot purchase: %s. Please remove these items from your cart or contact sales to upgrade your account: %w",
		acct, strings.Join(restricted, ", "), apperr.ErrRestriction)
}

// PlaceOrder validates the shipping form and submits the order. While one
// submission is in flight further calls are rejected, the client-side
// equivalent of disabling the submit control against double clicks.
func (p *CheckoutPage) PlaceOrder(ctx context.Context, addr apiclient.ShippingAddress) (*models.Order, error) {
	p.mu.Lock()
	if p.submitting {
		p.mu.Unlock()
		return nil, fmt.Errorf("an order is already being placed: %w", apperr.ErrValidation)
	}
	p.submitting = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.submitting = false
		p.mu.Unlock()
	}()

	if addr.Address == "" || addr.City == "" || addr.State == "" || addr.Zip == "" {
		return nil, fmt.Errorf("please fill in all required fields: %w", apperr.ErrValidation)
	}

	order, err := p.API.CreateOrder(ctx, addr)
	if err != nil {
		return nil, err
	}

	l := logging.FromContext(ctx).With("page", "checkout")
	l.Info("order_placed", "order_id", order.OrderID, "total", order.OrderTotal)

	user, _ := p.Session.User()
	fields := map[string]any{"orderID": order.OrderID, "total": order.OrderTotal}
	if user != nil {
		fields["userID"] = user.ID
	}
	p.publish(ctx, "order_created", fields)

	return order, nil
}
