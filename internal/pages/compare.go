package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/models"
)

// ComparePage drives the pick-then-compare workflow. The selection is
// persisted through the session so it survives restarts like the browser's
// comparison list did.
type ComparePage struct {
	Deps

	Workflow domain.Workflow
}

func NewComparePage(deps Deps) *ComparePage {
	p := &ComparePage{Deps: deps}
	p.Workflow.Selection = deps.Session.CompareList()
	return p
}

// Add queues a product for comparison. The outcome distinguishes a fresh
// add from a duplicate and from the three-product cap; the set is never
// silently truncated.
func (p *ComparePage) Add(productID int) (domain.AddOutcome, error) {
	set, outcome := p.Workflow.Selection.Add(productID)
	if outcome == domain.Added {
		p.Workflow.Selection = set
		if err := p.Session.SaveCompareList(set); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

func (p *ComparePage) Remove(productID int) error {
	p.Workflow.Selection = p.Workflow.Selection.Remove(productID)
	return p.Session.SaveCompareList(p.Workflow.Selection)
}

// Compare fetches the selected products side by side. At least two valid
// picks are required.
func (p *ComparePage) Compare(ctx context.Context) ([]models.Product, error) {
	if !p.Workflow.BeginCompare() {
		return nil, fmt.Errorf("please select at least 2 products to compare: %w", apperr.ErrValidation)
	}
	products, err := p.API.CompareProducts(ctx, p.Workflow.Selection)
	if err != nil {
		p.Workflow.Back()
		return nil, err
	}
	return products, nil
}

// Back returns to selection keeping the picks.
func (p *ComparePage) Back() {
	p.Workflow.Back()
}

// Clear empties the selection and the persisted list.
func (p *ComparePage) Clear() error {
	p.Workflow.Clear()
	return p.Session.SaveCompareList(nil)
}
