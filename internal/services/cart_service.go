package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/redisstore"
)

// Shopper identifies who owns a cart or wishlist: an authenticated user
// or an anonymous guest carrying a client-generated token. Exactly one
// of the two fields is set per request.
type Shopper struct {
	UserID  string
	GuestID string
}

// Authenticated reports whether the shopper is a logged-in user.
func (s Shopper) Authenticated() bool {
	return s.UserID != ""
}

// Valid reports whether the shopper carries any identity at all.
func (s Shopper) Valid() bool {
	return s.UserID != "" || s.GuestID != ""
}

// CartService keeps a shopper's cart in sync with its backing store.
// The store is selected per call: authenticated shoppers read and write
// database rows, guests read and write the redis guest store. Every
// mutation is applied to the backing store before the derived view is
// returned, so a reported cart always reflects persisted state.
//
// On login the guest lists are discarded and whatever the user's stored
// lists hold becomes authoritative. There is no merge.
type CartService struct {
	cartRepo    repositories.CartRepository
	guestStore  redisstore.GuestStore
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, guestStore redisstore.GuestStore, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		guestStore:  guestStore,
		productRepo: productRepo,
	}
}

func (s *CartService) load(ctx context.Context, shopper Shopper) ([]models.CartItem, error) {
	if shopper.Authenticated() {
		return s.cartRepo.GetByUser(shopper.UserID)
	}
	return s.guestStore.GetCart(ctx, shopper.GuestID)
}

func (s *CartService) save(ctx context.Context, shopper Shopper, items []models.CartItem) error {
	if shopper.Authenticated() {
		return s.cartRepo.ReplaceForUser(shopper.UserID, items)
	}
	return s.guestStore.SaveCart(ctx, shopper.GuestID, items)
}

// Get returns the derived cart view for the shopper.
func (s *CartService) Get(ctx context.Context, shopper Shopper) (models.CartView, error) {
	items, err := s.load(ctx, shopper)
	if err != nil {
		return models.CartView{}, err
	}
	return models.NewCartView(items), nil
}

// Add puts qty units of a product into the cart. Adding a product that
// is already present increments its quantity instead of duplicating the
// row. qty values below 1 are treated as 1.
func (s *CartService) Add(ctx context.Context, shopper Shopper, productID string, qty int) (models.CartView, error) {
	if qty < 1 {
		qty = 1
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return models.CartView{}, err
	}
	if !product.InStock {
		return models.CartView{}, fmt.Errorf("product %s is out of stock", product.Name)
	}

	items, err := s.load(ctx, shopper)
	if err != nil {
		return models.CartView{}, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  qty,
			AddedAt:   time.Now(),
		})
	}

	if err := s.save(ctx, shopper, items); err != nil {
		return models.CartView{}, err
	}
	return models.NewCartView(items), nil
}

// SetQuantity sets the quantity of a product already in the cart.
// Values below 1 are rejected silently and leave the cart untouched;
// the only way to drop an item is Remove.
func (s *CartService) SetQuantity(ctx context.Context, shopper Shopper, productID string, qty int) (models.CartView, error) {
	items, err := s.load(ctx, shopper)
	if err != nil {
		return models.CartView{}, err
	}

	if qty < 1 {
		return models.NewCartView(items), nil
	}

	changed := false
	for i := range items {
		if items[i].ProductID == productID {
			if items[i].Quantity != qty {
				items[i].Quantity = qty
				changed = true
			}
			break
		}
	}
	if !changed {
		return models.NewCartView(items), nil
	}

	if err := s.save(ctx, shopper, items); err != nil {
		return models.CartView{}, err
	}
	return models.NewCartView(items), nil
}

// Remove drops a product from the cart regardless of quantity. Removing
// a product that is not in the cart is a no-op and returns the
// unchanged view.
func (s *CartService) Remove(ctx context.Context, shopper Shopper, productID string) (models.CartView, error) {
	if shopper.Authenticated() {
		err := s.cartRepo.DeleteItem(shopper.UserID, productID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return models.CartView{}, err
		}
		items, err := s.cartRepo.GetByUser(shopper.UserID)
		if err != nil {
			return models.CartView{}, err
		}
		return models.NewCartView(items), nil
	}

	items, err := s.guestStore.GetCart(ctx, shopper.GuestID)
	if err != nil {
		return models.CartView{}, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return models.NewCartView(items), nil
	}

	if err := s.guestStore.SaveCart(ctx, shopper.GuestID, kept); err != nil {
		return models.CartView{}, err
	}
	return models.NewCartView(kept), nil
}

// Clear empties the cart. Used by checkout after an order is placed.
func (s *CartService) Clear(ctx context.Context, shopper Shopper) error {
	if shopper.Authenticated() {
		return s.cartRepo.ReplaceForUser(shopper.UserID, nil)
	}
	return s.guestStore.DeleteCart(ctx, shopper.GuestID)
}

// EndGuestSession discards a guest's cart after login. The user's
// stored cart becomes authoritative; guest contents are not merged.
// A failed discard is logged but does not block the login.
func (s *CartService) EndGuestSession(ctx context.Context, guestID string) {
	if guestID == "" {
		return
	}
	if err := s.guestStore.DeleteCart(ctx, guestID); err != nil {
		log.Printf("Failed to discard guest cart %s: %v", guestID, err)
	}
}
