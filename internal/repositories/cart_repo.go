package repositories

import "storefront/internal/models"

// CartRepository defines the interface for persisted (authenticated)
// cart rows. The write model mirrors the storefront's usage: the whole
// list is replaced per mutation, plus a targeted per-product delete.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	ReplaceForUser(userID string, items []models.CartItem) error
	DeleteItem(userID, productID string) error
}

// WishlistRepository defines the interface for persisted wishlist rows.
// A product appears at most once per user; the unique index backs the
// set semantics the service relies on.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistItem, error)
	ReplaceForUser(userID string, items []models.WishlistItem) error
	DeleteItem(userID, productID string) error
}
