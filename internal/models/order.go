package models

import "time"

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// statusTransitions is the guarded transition table for order status.
// Delivered and Cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is permitted.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a line item: a snapshot of a CartItem at purchase time.
type OrderItem struct {
	ID        string  `json:"-" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // price at the time of order
	Quantity  int     `json:"quantity"`
}

// ShippingAddress is the address snapshot embedded in an order. Edits to
// the address book after checkout never affect existing orders.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	City     string `json:"city"`
	State    string `json:"state"`
	PostCode string `json:"post_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// Order is a customer order. It is created once at checkout; Status is
// the only field mutated afterwards, exclusively by admin action.
type Order struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Number    string          `json:"number" gorm:"uniqueIndex;type:varchar(40)"`
	UserID    string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	Shipping  ShippingAddress `json:"shipping" gorm:"embedded;embeddedPrefix:ship_"`
	Total     float64         `json:"total"`
	Status    OrderStatus     `json:"status" gorm:"type:varchar(20)"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
