package models

import "time"

// CartItem is a product in a shopper's cart with a quantity. The product
// fields are a snapshot taken when the item was added so the cart stays
// renderable even if the catalog row changes underneath it.
// Quantity is never persisted below 1; removing the last unit removes
// the row instead.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id,omitempty" gorm:"index:idx_cart_user_product,unique;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"index:idx_cart_user_product,unique;type:varchar(36)"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// WishlistItem is a bare product reference; a product appears at most
// once per wishlist (set semantics, no quantity).
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id,omitempty" gorm:"index:idx_wishlist_user_product,unique;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"index:idx_wishlist_user_product,unique;type:varchar(36)"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
	AddedAt   time.Time `json:"added_at"`
}

// CartView is the derived read-only view over a cart. Count and Subtotal
// are recomputed from the item list on every read; nothing is cached.
type CartView struct {
	Items    []CartItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}

// NewCartView derives the view from an item list.
func NewCartView(items []CartItem) CartView {
	view := CartView{Items: items}
	if view.Items == nil {
		view.Items = []CartItem{}
	}
	for _, item := range items {
		view.Count += item.Quantity
		view.Subtotal += item.Price * float64(item.Quantity)
	}
	return view
}
