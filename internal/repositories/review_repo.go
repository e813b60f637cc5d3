package repositories

import "storefront/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	GetApprovedByProduct(productID string) ([]models.Review, error)
	GetAll() ([]models.Review, error)
	SetApproval(id string, approved bool) error
	Delete(id string) error
}
