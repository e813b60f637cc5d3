package redisstore

import (
	"context"
	"sync"

	"storefront/internal/models"
)

// MemoryStore is an in-memory implementation of GuestStore and
// CatalogCache for tests and local runs without redis.
type MemoryStore struct {
	carts     map[string][]models.CartItem
	wishlists map[string][]models.WishlistItem
	catalog   []models.Product
	hasCache  bool
	mu        sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:     make(map[string][]models.CartItem),
		wishlists: make(map[string][]models.WishlistItem),
	}
}

// GetCart returns the guest's cart list; an absent key is an empty cart.
func (s *MemoryStore) GetCart(_ context.Context, guestID string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CartItem, len(s.carts[guestID]))
	copy(items, s.carts[guestID])
	return items, nil
}

// SaveCart overwrites the guest's cart list.
func (s *MemoryStore) SaveCart(_ context.Context, guestID string, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	s.carts[guestID] = stored
	return nil
}

// DeleteCart discards the guest's cart list.
func (s *MemoryStore) DeleteCart(_ context.Context, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, guestID)
	return nil
}

// GetWishlist returns the guest's wishlist; an absent key is empty.
func (s *MemoryStore) GetWishlist(_ context.Context, guestID string) ([]models.WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.WishlistItem, len(s.wishlists[guestID]))
	copy(items, s.wishlists[guestID])
	return items, nil
}

// SaveWishlist overwrites the guest's wishlist.
func (s *MemoryStore) SaveWishlist(_ context.Context, guestID string, items []models.WishlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.WishlistItem, len(items))
	copy(stored, items)
	s.wishlists[guestID] = stored
	return nil
}

// DeleteWishlist discards the guest's wishlist.
func (s *MemoryStore) DeleteWishlist(_ context.Context, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, guestID)
	return nil
}

// GetProducts returns the cached product list or ErrCacheMiss.
func (s *MemoryStore) GetProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasCache {
		return nil, ErrCacheMiss
	}
	products := make([]models.Product, len(s.catalog))
	copy(products, s.catalog)
	return products, nil
}

// SetProducts replaces the cached product list wholesale.
func (s *MemoryStore) SetProducts(_ context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = make([]models.Product, len(products))
	copy(s.catalog, products)
	s.hasCache = true
	return nil
}

// Invalidate drops the cached product list.
func (s *MemoryStore) Invalidate(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = nil
	s.hasCache = false
	return nil
}
