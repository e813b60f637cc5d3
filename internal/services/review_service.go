package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ReviewService handles customer reviews and their moderation. Reviews
// are created unapproved and become publicly visible only once an admin
// approves them.
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{
		repo: repo,
	}
}

// Create submits a review by an authenticated customer.
func (s *ReviewService) Create(userID, author string, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	review.UserID = userID
	review.Author = author
	review.Approved = false
	return s.repo.Create(review)
}

// ApprovedForProduct returns the publicly visible reviews of a product.
func (s *ReviewService) ApprovedForProduct(productID string) ([]models.Review, error) {
	return s.repo.GetApprovedByProduct(productID)
}

// SummaryForProduct derives the rating aggregate over approved reviews.
func (s *ReviewService) SummaryForProduct(productID string) (models.ReviewSummary, error) {
	reviews, err := s.repo.GetApprovedByProduct(productID)
	if err != nil {
		return models.ReviewSummary{}, err
	}
	summary := models.ReviewSummary{ReviewCount: len(reviews)}
	if len(reviews) == 0 {
		return summary, nil
	}
	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	summary.AverageRating = float64(total) / float64(len(reviews))
	return summary, nil
}

// ListAll returns every review, unapproved included. Admin console only.
func (s *ReviewService) ListAll() ([]models.Review, error) {
	return s.repo.GetAll()
}

// SetApproval flips a review's approval flag.
func (s *ReviewService) SetApproval(id string, approved bool) error {
	return s.repo.SetApproval(id, approved)
}

// Delete removes a review.
func (s *ReviewService) Delete(id string) error {
	return s.repo.Delete(id)
}
