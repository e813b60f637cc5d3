package repositories

import "storefront/internal/models"

// OrderRepository defines the interface for order data access. Orders
// are append-only except for their status field.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
}
