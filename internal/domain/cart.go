package domain

import (
	"encoding/json"
	"sort"
)

// ProductRef is the product snapshot embedded in a remote cart item.
type ProductRef struct {
	ProductID        int              `json:"productId"`
	Name             string           `json:"name"`
	Price            float64          `json:"price"`
	BuyerRequirement BuyerRequirement `json:"buyerRequirement"`
}

// RemoteCartItem is one cart entry as the API serves it.
type RemoteCartItem struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}

// cartItems absorbs both wire shapes of the cart document: an ordered array
// of items, or an object keyed by product id. Map-shaped input is ordered by
// product id so normalization is deterministic.
type cartItems []RemoteCartItem

func (ci *cartItems) UnmarshalJSON(data []byte) error {
	var asList []RemoteCartItem
	if err := json.Unmarshal(data, &asList); err == nil {
		*ci = asList
		return nil
	}

	var asMap map[string]RemoteCartItem
	if err := json.Unmarshal(data, &asMap); err != nil {
		return err
	}
	items := make([]RemoteCartItem, 0, len(asMap))
	for _, it := range asMap {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ProductID < items[j].Product.ProductID
	})
	*ci = items
	return nil
}

// CartPayload is the remote cart document.
type CartPayload struct {
	Items cartItems `json:"items"`
}

// CartLine is one product-and-quantity entry within a shopping cart. Price
// and buyer requirement are snapshots taken at fetch time so checkout can
// total and validate without refetching the catalog.
type CartLine struct {
	ProductID   int
	Name        string
	UnitPrice   float64
	Quantity    int
	Requirement BuyerRequirement
}

// NormalizeCartItems flattens a remote cart payload into canonical lines.
// A nil payload or absent items field yields an empty slice, never an error.
func NormalizeCartItems(payload *CartPayload) []CartLine {
	if payload == nil || len(payload.Items) == 0 {
		return []CartLine{}
	}
	lines := make([]CartLine, 0, len(payload.Items))
	for _, it := range payload.Items {
		lines = append(lines, CartLine{
			ProductID:   it.Product.ProductID,
			Name:        it.Product.Name,
			UnitPrice:   it.Product.Price,
			Quantity:    it.Quantity,
			Requirement: it.Product.BuyerRequirement,
		})
	}
	return lines
}

// DefaultTaxRate is the storefront's flat 8% tax policy.
const DefaultTaxRate = 0.08

// Totals is the order summary for a set of cart lines.
type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// ComputeTotals sums the cart at the given tax rate. Shipping is always free.
func ComputeTotals(lines []CartLine, taxRate float64) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}
	tax := subtotal * taxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: 0,
		Total:    subtotal + tax,
	}
}

// UpdateQuantity returns a copy of lines with the given product's quantity
// replaced. A quantity below one removes the line entirely rather than
// keeping it at zero. An unknown product id leaves the lines unchanged.
func UpdateQuantity(lines []CartLine, productID, quantity int) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
			continue
		}
		if quantity < 1 {
			continue
		}
		l.Quantity = quantity
		out = append(out, l)
	}
	return out
}

// CountItems is the cart badge value: total units across all lines.
func CountItems(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
