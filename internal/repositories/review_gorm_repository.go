package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create persists a new review. Reviews start unapproved.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID retrieves a single review.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review %s: %w", id, err)
	}
	return &review, nil
}

// GetApprovedByProduct retrieves the approved reviews of a product,
// newest first. This is the only read the storefront exposes publicly.
func (r *GORMReviewRepository) GetApprovedByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("product_id = ? AND approved = ?", productID, true).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// GetAll retrieves every review, unapproved included. Admin console only.
func (r *GORMReviewRepository) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reviews: %w", err)
	}
	return reviews, nil
}

// SetApproval flips the approval flag of a review.
func (r *GORMReviewRepository) SetApproval(id string, approved bool) error {
	res := r.db.Model(&models.Review{}).Where("id = ?", id).Update("approved", approved)
	if res.Error != nil {
		return fmt.Errorf("failed to set approval for review %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %s for approval update: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a review.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}
