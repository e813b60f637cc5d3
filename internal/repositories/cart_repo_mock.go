package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[string][]models.CartItem // keyed by user ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string][]models.CartItem),
	}
}

// GetByUser returns a copy of the cart rows for a user.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CartItem, len(r.items[userID]))
	copy(items, r.items[userID])
	return items, nil
}

// ReplaceForUser swaps the entire cart of a user.
func (r *MockCartRepository) ReplaceForUser(userID string, items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].UserID = userID
		if stored[i].ID == "" {
			stored[i].ID = uuid.New().String()
		}
	}
	r.items[userID] = stored
	return nil
}

// DeleteItem removes a single product from a user's cart.
func (r *MockCartRepository) DeleteItem(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items[userID]
	for i, item := range items {
		if item.ProductID == productID {
			r.items[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cart item %s for user %s: %w", productID, userID, ErrNotFound)
}

// MockWishlistRepository is an in-memory implementation of WishlistRepository.
type MockWishlistRepository struct {
	items map[string][]models.WishlistItem
	mu    sync.RWMutex
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{
		items: make(map[string][]models.WishlistItem),
	}
}

// GetByUser returns a copy of the wishlist rows for a user.
func (r *MockWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.WishlistItem, len(r.items[userID]))
	copy(items, r.items[userID])
	return items, nil
}

// ReplaceForUser swaps the entire wishlist of a user.
func (r *MockWishlistRepository) ReplaceForUser(userID string, items []models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]models.WishlistItem, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].UserID = userID
		if stored[i].ID == "" {
			stored[i].ID = uuid.New().String()
		}
	}
	r.items[userID] = stored
	return nil
}

// DeleteItem removes a single product from a user's wishlist.
func (r *MockWishlistRepository) DeleteItem(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items[userID]
	for i, item := range items {
		if item.ProductID == productID {
			r.items[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("wishlist item %s for user %s: %w", productID, userID, ErrNotFound)
}
