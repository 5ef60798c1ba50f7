package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithlab/storefront-client/internal/apiclient"
	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/stubapi"
)

func newTestClient(t *testing.T, stub *stubapi.Server, token string) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, 5*time.Second, func() string { return token })
}

func TestLogin(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), "")

	resp, err := client.Login(context.Background(), "testuser", "secret")
	require.NoError(t, err)
	assert.Equal(t, stubapi.Token, resp.Token)
	assert.Equal(t, "testuser", resp.User.Username)
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), "")

	_, err := client.Login(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
}

func TestProducts_Filter(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), "")

	all, err := client.Products(context.Background(), apiclient.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	cheap, err := client.Products(context.Background(), apiclient.ProductFilter{MaxPrice: 2000})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Atlas Helper", cheap[0].Name)

	white, err := client.Products(context.Background(), apiclient.ProductFilter{Color: "white"})
	require.NoError(t, err)
	assert.Len(t, white, 2)
}

func TestProductByID_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), "")

	_, err := client.ProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), "")

	cats, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 4)

	cat, err := client.CategoryByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Medical", cat.Name)

	_, err = client.CategoryByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCompareProducts(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), "")

	out, err := client.CompareProducts(context.Background(), []int{1, 3})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ProductID)
	assert.Equal(t, 3, out[1].ProductID)
}

func TestCart_RequiresAuth(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), "")

	_, err := client.Cart(context.Background())
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
}

func TestCart_BothWireShapes(t *testing.T) {
	t.Parallel()

	for _, mapShape := range []bool{false, true} {
		mapShape := mapShape
		name := "list"
		if mapShape {
			name = "map"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stub := stubapi.New()
			stub.CartMapShape = mapShape
			stub.SetCart(map[int]int{1: 2, 2: 1})
			client := newTestClient(t, stub, stubapi.Token)

			payload, err := client.Cart(context.Background())
			require.NoError(t, err)

			lines := domain.NormalizeCartItems(payload)
			require.Len(t, lines, 2)
			assert.Equal(t, 1, lines[0].ProductID)
			assert.Equal(t, 2, lines[0].Quantity)
			assert.Equal(t, 1200.0, lines[0].UnitPrice)
			assert.Equal(t, 2, lines[1].ProductID)
		})
	}
}

func TestAddToCart(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), stubapi.Token)

	payload, err := client.AddToCart(context.Background(), 1)
	require.NoError(t, err)

	lines := domain.NormalizeCartItems(payload)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	payload, err = client.AddToCart(context.Background(), 1)
	require.NoError(t, err)
	lines = domain.NormalizeCartItems(payload)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestUpdateCartItem_RemovesAtZero(t *testing.T) {
	t.Parallel()

	stub := stubapi.New()
	stub.SetCart(map[int]int{1: 3})
	client := newTestClient(t, stub, stubapi.Token)

	payload, err := client.UpdateCartItem(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Empty(t, domain.NormalizeCartItems(payload))
}

func TestClearCart(t *testing.T) {
	t.Parallel()

	stub := stubapi.New()
	stub.SetCart(map[int]int{1: 1, 2: 2})
	client := newTestClient(t, stub, stubapi.Token)

	require.NoError(t, client.ClearCart(context.Background()))

	payload, err := client.Cart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, domain.NormalizeCartItems(payload))
}

func TestCreateOrder_RestrictedProduct(t *testing.T) {
	t.Parallel()

	stub := stubapi.New() // PERSONAL account
	stub.SetCart(map[int]int{4: 1})
	client := newTestClient(t, stub, stubapi.Token)

	_, err := client.CreateOrder(context.Background(), apiclient.ShippingAddress{
		Address: "1 Main St", City: "Springfield", State: "IL", Zip: "62701",
	})
	require.ErrorIs(t, err, apperr.ErrRestriction)
	assert.Contains(t, err.Error(), "Product 'Guardian X' requires a GOVERNMENT account")
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), stubapi.Token)

	_, err := client.CreateOrder(context.Background(), apiclient.ShippingAddress{})
	require.ErrorIs(t, err, apperr.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "Shopping cart is empty")
}

func TestCreateOrder_Success(t *testing.T) {
	t.Parallel()

	stub := stubapi.New()
	stub.SetCart(map[int]int{1: 2})
	client := newTestClient(t, stub, stubapi.Token)

	order, err := client.CreateOrder(context.Background(), apiclient.ShippingAddress{
		Address: "1 Main St", City: "Springfield", State: "IL", Zip: "62701",
	})
	require.NoError(t, err)
	assert.Equal(t, 2400.0, order.OrderTotal)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, 2, order.LineItems[0].Quantity)

	// the server clears the cart after a successful order
	payload, err := client.Cart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, domain.NormalizeCartItems(payload))
}

func TestProfile_RoundTrip(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, stubapi.New(), stubapi.Token)

	p, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Springfield", p.City)

	p.City = "Shelbyville"
	updated, err := client.UpdateProfile(context.Background(), *p)
	require.NoError(t, err)
	assert.Equal(t, "Shelbyville", updated.City)
}

func TestTransportFailureIsRetryable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(stubapi.New().Handler())
	srv.Close() // connection refused from here on
	client := apiclient.New(srv.URL, time.Second, nil)

	_, err := client.Products(context.Background(), apiclient.ProductFilter{})
	require.ErrorIs(t, err, apperr.ErrUnavailable)
	assert.True(t, apperr.Retryable(err))
}

func TestStatusErrorPassesServerMessageThrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "duplicate order"}`))
	}))
	t.Cleanup(srv.Close)
	client := apiclient.New(srv.URL, time.Second, nil)

	_, err := client.Orders(context.Background())
	require.ErrorIs(t, err, apperr.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "duplicate order")
	assert.False(t, errors.Is(err, apperr.ErrUnavailable))
}
