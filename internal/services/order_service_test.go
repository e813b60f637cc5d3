package services_test

import (
	"context"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"
	"storefront/pkg/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(eventType string, payload interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

type orderFixture struct {
	orders    *repositories.MockOrderRepository
	addresses *repositories.MockAddressRepository
	cart      *services.CartService
	products  repositories.ProductRepository
	publisher *MockEventPublisher
	svc       *services.OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	products := repositories.NewMockProductRepository()
	cart := services.NewCartService(repositories.NewMockCartRepository(), redisstore.NewMemoryStore(), products)
	f := &orderFixture{
		orders:    repositories.NewMockOrderRepository(),
		addresses: repositories.NewMockAddressRepository(),
		cart:      cart,
		products:  products,
		publisher: new(MockEventPublisher),
	}
	f.svc = services.NewOrderService(f.orders, f.addresses, f.cart, f.publisher)
	return f
}

func (f *orderFixture) seedAddress(t *testing.T, userID string) models.Address {
	t.Helper()
	address := models.Address{
		UserID:   userID,
		FullName: "Jordan Doe",
		Line1:    "1 Main St",
		City:     "Springfield",
		PostCode: "12345",
		Country:  "US",
	}
	require.NoError(t, f.addresses.Create(&address))
	return address
}

func TestCheckoutSnapshotsCartAndAddress(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	seedProduct(t, f.products, "prod-1", 100)
	seedProduct(t, f.products, "prod-2", 25)
	shopper := services.Shopper{UserID: "user-1"}
	_, err := f.cart.Add(ctx, shopper, "prod-1", 2)
	require.NoError(t, err)
	_, err = f.cart.Add(ctx, shopper, "prod-2", 1)
	require.NoError(t, err)

	address := f.seedAddress(t, "user-1")
	f.publisher.On("Publish", rabbitmq.EventOrderCreated, mock.Anything).Return(nil)

	order, err := f.svc.Checkout(ctx, "user-1", address.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, 225.0, order.Total)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "1 Main St", order.Shipping.Line1)
	assert.Regexp(t, `^ORD-\d{4}-[0-9A-F]{8}$`, order.Number)

	// The cart is emptied once the order exists.
	view, err := f.cart.Get(ctx, shopper)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	f.publisher.AssertExpectations(t)
}

func TestCheckoutEmptyCartIsRejected(t *testing.T) {
	f := newOrderFixture(t)
	address := f.seedAddress(t, "user-1")

	_, err := f.svc.Checkout(context.Background(), "user-1", address.ID)
	assert.ErrorContains(t, err, "empty cart")
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCheckoutUnknownAddressIsRejected(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	seedProduct(t, f.products, "prod-1", 10)
	_, err := f.cart.Add(ctx, services.Shopper{UserID: "user-1"}, "prod-1", 1)
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, "user-1", "missing-address")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetOrderForUserScopesOwnership(t *testing.T) {
	f := newOrderFixture(t)

	order := &models.Order{ID: "order-1", Number: "ORD-2026-AAAAAAAA", UserID: "user-1", Status: models.StatusProcessing}
	require.NoError(t, f.orders.Create(order))

	got, err := f.svc.GetOrderForUser("user-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)

	// Someone else's order looks exactly like a missing one.
	_, err = f.svc.GetOrderForUser("user-2", "order-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	f := newOrderFixture(t)
	f.publisher.On("Publish", rabbitmq.EventOrderStatusUpdated, mock.Anything).Return(nil)

	order := &models.Order{ID: "order-1", Number: "ORD-2026-BBBBBBBB", UserID: "user-1", Status: models.StatusProcessing}
	require.NoError(t, f.orders.Create(order))

	require.NoError(t, f.svc.UpdateStatus("order-1", models.StatusShipped))
	require.NoError(t, f.svc.UpdateStatus("order-1", models.StatusDelivered))

	// Delivered is terminal.
	err := f.svc.UpdateStatus("order-1", models.StatusCancelled)
	assert.ErrorContains(t, err, "not permitted")
}

func TestUpdateStatusRejectsInvalidMoves(t *testing.T) {
	f := newOrderFixture(t)

	order := &models.Order{ID: "order-1", Number: "ORD-2026-CCCCCCCC", UserID: "user-1", Status: models.StatusProcessing}
	require.NoError(t, f.orders.Create(order))

	// Unknown status values never reach the repository.
	err := f.svc.UpdateStatus("order-1", models.OrderStatus("Teleported"))
	assert.ErrorContains(t, err, "invalid order status")

	// Skipping Shipped is not a legal move.
	err = f.svc.UpdateStatus("order-1", models.StatusDelivered)
	assert.ErrorContains(t, err, "not permitted")

	got, err := f.orders.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, got.Status)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		ok       bool
	}{
		{models.StatusProcessing, models.StatusShipped, true},
		{models.StatusProcessing, models.StatusCancelled, true},
		{models.StatusShipped, models.StatusDelivered, true},
		{models.StatusShipped, models.StatusCancelled, true},
		{models.StatusProcessing, models.StatusDelivered, false},
		{models.StatusDelivered, models.StatusShipped, false},
		{models.StatusCancelled, models.StatusProcessing, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
