package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"storefront/internal/metrics"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events. Satisfied by
// *rabbitmq.Client; tests substitute a mock.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// OrderService handles checkout and order lifecycle management.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	addressRepo repositories.AddressRepository
	cartService *CartService
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, addressRepo repositories.AddressRepository, cartService *CartService, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		cartService: cartService,
		publisher:   publisher,
	}
}

// newOrderNumber generates a human-quotable order number.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("ORD-%d-%s", time.Now().Year(), suffix)
}

// Checkout turns the user's current cart into an order: line items and
// the shipping address are snapshotted at purchase time, the cart is
// cleared, and an order.created event is published. Checkout requires
// an authenticated user; guests cannot place orders.
func (s *OrderService) Checkout(ctx context.Context, userID, addressID string) (*models.Order, error) {
	shopper := Shopper{UserID: userID}

	view, err := s.cartService.Get(ctx, shopper)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	if len(view.Items) == 0 {
		return nil, fmt.Errorf("cannot checkout an empty cart")
	}

	address, err := s.addressRepo.GetByID(userID, addressID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipping address: %w", err)
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		Number:    newOrderNumber(),
		UserID:    userID,
		Shipping:  address.Snapshot(),
		Total:     view.Subtotal,
		Status:    models.StatusProcessing,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, item := range view.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	metrics.OrdersCreatedTotal.Inc()

	// The order exists; a failed cart clear or event publish must not
	// undo the purchase.
	if err := s.cartService.Clear(ctx, shopper); err != nil {
		log.Printf("Failed to clear cart after checkout for user %s: %v", userID, err)
	}
	s.publish(rabbitmq.EventOrderCreated, map[string]interface{}{
		"order_id": order.ID,
		"number":   order.Number,
		"user_id":  order.UserID,
		"total":    order.Total,
		"status":   order.Status,
	})

	return order, nil
}

// GetOrdersForUser retrieves a user's own orders.
func (s *OrderService) GetOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderForUser retrieves a single order, scoped to its owner.
func (s *OrderService) GetOrderForUser(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, repositories.ErrNotFound)
	}
	return order, nil
}

// GetAllOrders retrieves every order. Admin console only.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateStatus moves an order along the status transition table and
// publishes an order.status_updated event. Transitions outside the
// table, including any move out of a terminal status, are rejected.
func (s *OrderService) UpdateStatus(id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to load order for status update: %w", err)
	}
	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("status transition %s -> %s is not permitted", order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(status)).Inc()

	s.publish(rabbitmq.EventOrderStatusUpdated, map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return nil
}

func (s *OrderService) publish(eventType string, payload interface{}) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized, skipping publication")
		return
	}
	if err := s.publisher.Publish(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s: %v", eventType, err)
	}
}
