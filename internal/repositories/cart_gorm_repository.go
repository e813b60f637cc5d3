package repositories

import (
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves the cart rows for a user, oldest first.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("added_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// ReplaceForUser swaps the entire cart of a user in one transaction so
// a failed write never leaves a half-replaced cart behind.
func (r *GORMCartRepository) ReplaceForUser(userID string, items []models.CartItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].UserID = userID
			if items[i].ID == "" {
				items[i].ID = uuid.New().String()
			}
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace cart for user %s: %w", userID, err)
	}
	return nil
}

// DeleteItem removes a single product from a user's cart.
func (r *GORMCartRepository) DeleteItem(userID, productID string) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s for user %s: %w", productID, userID, ErrNotFound)
	}
	return nil
}

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUser retrieves the wishlist rows for a user, oldest first.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Where("user_id = ?", userID).Order("added_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return items, nil
}

// ReplaceForUser swaps the entire wishlist of a user in one transaction.
func (r *GORMWishlistRepository) ReplaceForUser(userID string, items []models.WishlistItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].UserID = userID
			if items[i].ID == "" {
				items[i].ID = uuid.New().String()
			}
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace wishlist for user %s: %w", userID, err)
	}
	return nil
}

// DeleteItem removes a single product from a user's wishlist.
func (r *GORMWishlistRepository) DeleteItem(userID, productID string) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item %s for user %s: %w", productID, userID, ErrNotFound)
	}
	return nil
}
