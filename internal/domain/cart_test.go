package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCartItems_ListShape(t *testing.T) {
	t.Parallel()

	raw := `{"items": [
		{"product": {"productId": 2, "name": "Forge Titan", "price": 8500, "buyerRequirement": "BUSINESS"}, "quantity": 1},
		{"product": {"productId": 1, "name": "Atlas Helper", "price": 1200}, "quantity": 3}
	]}`

	var payload CartPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	lines := NormalizeCartItems(&payload)
	require.Len(t, lines, 2)
	assert.Equal(t, CartLine{ProductID: 2, Name: "Forge Titan", UnitPrice: 8500, Quantity: 1, Requirement: RequirementBusiness}, lines[0])
	assert.Equal(t, 3, lines[1].Quantity)
}

func TestNormalizeCartItems_MapShape(t *testing.T) {
	t.Parallel()

	raw := `{"items": {"7": {"product": {"productId": 7, "price": 50}, "quantity": 3}}}`

	var payload CartPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	lines := NormalizeCartItems(&payload)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 50.0, lines[0].UnitPrice)
}

func TestNormalizeCartItems_ShapesAgree(t *testing.T) {
	t.Parallel()

	asList := `{"items": [
		{"product": {"productId": 1, "price": 10}, "quantity": 2},
		{"product": {"productId": 5, "price": 20}, "quantity": 1}
	]}`
	asMap := `{"items": {
		"5": {"product": {"productId": 5, "price": 20}, "quantity": 1},
		"1": {"product": {"productId": 1, "price": 10}, "quantity": 2}
	}}`

	var fromList, fromMap CartPayload
	require.NoError(t, json.Unmarshal([]byte(asList), &fromList))
	require.NoError(t, json.Unmarshal([]byte(asMap), &fromMap))

	assert.Equal(t, NormalizeCartItems(&fromList), NormalizeCartItems(&fromMap))
}

func TestNormalizeCartItems_NilAndEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NormalizeCartItems(nil))

	var payload CartPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.Empty(t, NormalizeCartItems(&payload))

	require.NoError(t, json.Unmarshal([]byte(`{"items": null}`), &payload))
	assert.Empty(t, NormalizeCartItems(&payload))
}

func TestNormalizeCartItems_Idempotent(t *testing.T) {
	t.Parallel()

	raw := `{"items": {"3": {"product": {"productId": 3, "price": 5}, "quantity": 4}}}`
	var payload CartPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	once := NormalizeCartItems(&payload)
	again := NormalizeCartItems(&payload)
	assert.Equal(t, once, again)
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	lines := []CartLine{{ProductID: 1, UnitPrice: 100, Quantity: 2}}
	totals := ComputeTotals(lines, 0.08)

	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 16.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 216.0, totals.Total)
}

func TestComputeTotals_Empty(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(nil, DefaultTaxRate)
	assert.Equal(t, Totals{}, totals)
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	base := []CartLine{
		{ProductID: 1, UnitPrice: 10, Quantity: 2},
		{ProductID: 2, UnitPrice: 20, Quantity: 1},
	}

	tests := []struct {
		name      string
		productID int
		quantity  int
		wantLen   int
		wantQty   int
	}{
		{name: "replace quantity", productID: 1, quantity: 5, wantLen: 2, wantQty: 5},
		{name: "zero removes", productID: 1, quantity: 0, wantLen: 1},
		{name: "negative removes", productID: 1, quantity: -5, wantLen: 1},
		{name: "unknown id is a no-op", productID: 99, quantity: 3, wantLen: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := UpdateQuantity(base, tt.productID, tt.quantity)
			require.Len(t, out, tt.wantLen)
			if tt.wantQty > 0 {
				assert.Equal(t, tt.wantQty, out[0].Quantity)
			}
			// the input is never mutated
			assert.Equal(t, 2, base[0].Quantity)
		})
	}
}

func TestCountItems(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CountItems(nil))
	assert.Equal(t, 5, CountItems([]CartLine{{Quantity: 2}, {Quantity: 3}}))
}
