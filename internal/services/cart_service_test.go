package services_test

import (
	"context"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo repositories.ProductRepository, id string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: "test",
		Price:    price,
		InStock:  true,
	}
	require.NoError(t, repo.Create(&product))
	return product
}

func newCartFixture(t *testing.T) (*services.CartService, repositories.ProductRepository, *redisstore.MemoryStore, *repositories.MockCartRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	guestStore := redisstore.NewMemoryStore()
	cartRepo := repositories.NewMockCartRepository()
	return services.NewCartService(cartRepo, guestStore, productRepo), productRepo, guestStore, cartRepo
}

func TestCartAddSetQuantityRemoveScenario(t *testing.T) {
	svc, productRepo, _, _ := newCartFixture(t)
	ctx := context.Background()
	shopper := services.Shopper{GuestID: "guest-1"}

	seedProduct(t, productRepo, "prod-1", 100)

	view, err := svc.Add(ctx, shopper, "prod-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 200.0, view.Subtotal)

	view, err = svc.SetQuantity(ctx, shopper, "prod-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Count)
	assert.Equal(t, 500.0, view.Subtotal)

	view, err = svc.Remove(ctx, shopper, "prod-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, 0.0, view.Subtotal)
}

func TestCartAddExistingProductIncrements(t *testing.T) {
	svc, productRepo, _, _ := newCartFixture(t)
	ctx := context.Background()
	shopper := services.Shopper{UserID: "user-1"}

	seedProduct(t, productRepo, "prod-1", 10)

	_, err := svc.Add(ctx, shopper, "prod-1", 1)
	require.NoError(t, err)
	view, err := svc.Add(ctx, shopper, "prod-1", 3)
	require.NoError(t, err)

	// One row, summed quantity; never a duplicate line.
	require.Len(t, view.Items, 1)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.Equal(t, 4, view.Count)
	assert.Equal(t, 40.0, view.Subtotal)
}

func TestCartSetQuantityBelowOneIsIgnored(t *testing.T) {
	svc, productRepo, _, _ := newCartFixture(t)
	ctx := context.Background()
	shopper := services.Shopper{GuestID: "guest-1"}

	seedProduct(t, productRepo, "prod-1", 25)
	_, err := svc.Add(ctx, shopper, "prod-1", 2)
	require.NoError(t, err)

	for _, qty := range []int{0, -1, -100} {
		view, err := svc.SetQuantity(ctx, shopper, "prod-1", qty)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Items[0].Quantity, "quantity %d must be rejected silently", qty)
	}

	// Remove stays the only way to drop the item.
	view, err := svc.Remove(ctx, shopper, "prod-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartCountAndSubtotalInvariant(t *testing.T) {
	svc, productRepo, _, _ := newCartFixture(t)
	ctx := context.Background()
	shopper := services.Shopper{UserID: "user-1"}

	seedProduct(t, productRepo, "prod-1", 9.99)
	seedProduct(t, productRepo, "prod-2", 49.50)
	seedProduct(t, productRepo, "prod-3", 150)

	_, err := svc.Add(ctx, shopper, "prod-1", 3)
	require.NoError(t, err)
	_, err = svc.Add(ctx, shopper, "prod-2", 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, shopper, "prod-3", 2)
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, shopper, "prod-2", 4)
	require.NoError(t, err)
	view, err := svc.Remove(ctx, shopper, "prod-3")
	require.NoError(t, err)

	wantCount := 0
	wantSubtotal := 0.0
	for _, item := range view.Items {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		wantCount += item.Quantity
		wantSubtotal += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, wantCount, view.Count)
	assert.InDelta(t, wantSubtotal, view.Subtotal, 1e-9)
}

// An authenticated Remove deletes the one matching row and leaves the
// rest of the stored cart in place. Removing a product that is not in
// the cart is a no-op, not an error.
func TestCartRemoveDeletesSingleStoredRow(t *testing.T) {
	svc, productRepo, _, cartRepo := newCartFixture(t)
	ctx := context.Background()
	shopper := services.Shopper{UserID: "user-1"}

	seedProduct(t, productRepo, "prod-1", 10)
	seedProduct(t, productRepo, "prod-2", 20)

	_, err := svc.Add(ctx, shopper, "prod-1", 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, shopper, "prod-2", 1)
	require.NoError(t, err)

	view, err := svc.Remove(ctx, shopper, "prod-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "prod-2", view.Items[0].ProductID)

	stored, err := cartRepo.GetByUser("user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "prod-2", stored[0].ProductID)

	view, err = svc.Remove(ctx, shopper, "prod-never-added")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "prod-2", view.Items[0].ProductID)
}

func TestCartAddUnknownOrOutOfStockProduct(t *testing.T) {
	svc, productRepo, _, _ := newCartFixture(t)
	ctx := context.Background()
	shopper := services.Shopper{GuestID: "guest-1"}

	_, err := svc.Add(ctx, shopper, "missing", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	product := models.Product{ID: "prod-gone", Name: "Sold Out", Category: "test", Price: 5, InStock: false}
	require.NoError(t, productRepo.Create(&product))
	_, err = svc.Add(ctx, shopper, "prod-gone", 1)
	assert.ErrorContains(t, err, "out of stock")
}

// Logging in does not merge the guest cart into the user's stored cart:
// the guest contents are discarded and the stored cart wins exactly.
func TestCartLoginDiscardsGuestContents(t *testing.T) {
	svc, productRepo, guestStore, cartRepo := newCartFixture(t)
	ctx := context.Background()

	seedProduct(t, productRepo, "prod-guest", 10)
	seedProduct(t, productRepo, "prod-user", 99)

	guest := services.Shopper{GuestID: "guest-1"}
	_, err := svc.Add(ctx, guest, "prod-guest", 2)
	require.NoError(t, err)

	// The user already has a different stored cart.
	require.NoError(t, cartRepo.ReplaceForUser("user-1", []models.CartItem{
		{ProductID: "prod-user", Name: "Product prod-user", Price: 99, Quantity: 1},
	}))

	svc.EndGuestSession(ctx, guest.GuestID)

	view, err := svc.Get(ctx, services.Shopper{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "prod-user", view.Items[0].ProductID)
	assert.Equal(t, 99.0, view.Subtotal)

	// The guest key is gone; a new visit from that token starts empty.
	items, err := guestStore.GetCart(ctx, guest.GuestID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartClearEmptiesBackingStore(t *testing.T) {
	svc, productRepo, _, cartRepo := newCartFixture(t)
	ctx := context.Background()
	shopper := services.Shopper{UserID: "user-1"}

	seedProduct(t, productRepo, "prod-1", 10)
	_, err := svc.Add(ctx, shopper, "prod-1", 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, shopper))

	items, err := cartRepo.GetByUser("user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
