package services

import (
	"context"
	"errors"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/redisstore"
)

// WishlistService mirrors CartService for the wishlist: store selection
// by authentication state, set semantics, no quantities.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	guestStore   redisstore.GuestStore
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, guestStore redisstore.GuestStore, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		guestStore:   guestStore,
		productRepo:  productRepo,
	}
}

func (s *WishlistService) load(ctx context.Context, shopper Shopper) ([]models.WishlistItem, error) {
	if shopper.Authenticated() {
		return s.wishlistRepo.GetByUser(shopper.UserID)
	}
	return s.guestStore.GetWishlist(ctx, shopper.GuestID)
}

func (s *WishlistService) save(ctx context.Context, shopper Shopper, items []models.WishlistItem) error {
	if shopper.Authenticated() {
		return s.wishlistRepo.ReplaceForUser(shopper.UserID, items)
	}
	return s.guestStore.SaveWishlist(ctx, shopper.GuestID, items)
}

// Get returns the shopper's wishlist in insertion order.
func (s *WishlistService) Get(ctx context.Context, shopper Shopper) ([]models.WishlistItem, error) {
	items, err := s.load(ctx, shopper)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items, nil
}

// Add puts a product on the wishlist. Adding a product that is already
// present is a no-op: a product appears at most once.
func (s *WishlistService) Add(ctx context.Context, shopper Shopper, productID string) ([]models.WishlistItem, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	items, err := s.load(ctx, shopper)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ProductID == productID {
			return items, nil
		}
	}

	items = append(items, models.WishlistItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		AddedAt:   time.Now(),
	})

	if err := s.save(ctx, shopper, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops a product from the wishlist. Removing a product that is
// not on the list is a no-op.
func (s *WishlistService) Remove(ctx context.Context, shopper Shopper, productID string) ([]models.WishlistItem, error) {
	if shopper.Authenticated() {
		err := s.wishlistRepo.DeleteItem(shopper.UserID, productID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		items, err := s.wishlistRepo.GetByUser(shopper.UserID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.WishlistItem{}
		}
		return items, nil
	}

	items, err := s.guestStore.GetWishlist(ctx, shopper.GuestID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if kept == nil {
		kept = []models.WishlistItem{}
	}

	if err := s.guestStore.SaveWishlist(ctx, shopper.GuestID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// EndGuestSession discards a guest's wishlist after login; the user's
// stored wishlist becomes authoritative, even when it is empty.
func (s *WishlistService) EndGuestSession(ctx context.Context, guestID string) {
	if guestID == "" {
		return
	}
	if err := s.guestStore.DeleteWishlist(ctx, guestID); err != nil {
		log.Printf("Failed to discard guest wishlist %s: %v", guestID, err)
	}
}
