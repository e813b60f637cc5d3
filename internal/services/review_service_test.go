package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryReviewRepository is an in-memory ReviewRepository for tests.
type memoryReviewRepository struct {
	reviews []models.Review
}

func (r *memoryReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memoryReviewRepository) GetByID(id string) (*models.Review, error) {
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			review := r.reviews[i]
			return &review, nil
		}
	}
	return nil, fmt.Errorf("review %s: %w", id, repositories.ErrNotFound)
}

func (r *memoryReviewRepository) GetApprovedByProduct(productID string) ([]models.Review, error) {
	approved := []models.Review{}
	for _, review := range r.reviews {
		if review.ProductID == productID && review.Approved {
			approved = append(approved, review)
		}
	}
	return approved, nil
}

func (r *memoryReviewRepository) GetAll() ([]models.Review, error) {
	return append([]models.Review{}, r.reviews...), nil
}

func (r *memoryReviewRepository) SetApproval(id string, approved bool) error {
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews[i].Approved = approved
			return nil
		}
	}
	return fmt.Errorf("review %s: %w", id, repositories.ErrNotFound)
}

func (r *memoryReviewRepository) Delete(id string) error {
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("review %s: %w", id, repositories.ErrNotFound)
}

func TestReviewCreateStartsUnapproved(t *testing.T) {
	repo := &memoryReviewRepository{}
	svc := services.NewReviewService(repo)

	review := &models.Review{ProductID: "prod-1", Rating: 5, Body: "Great"}
	// The caller cannot pre-approve their own review.
	review.Approved = true
	require.NoError(t, svc.Create("user-1", "Ada L", review))
	assert.False(t, review.Approved)
	assert.Equal(t, "user-1", review.UserID)
	assert.Equal(t, "Ada L", review.Author)

	visible, err := svc.ApprovedForProduct("prod-1")
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestReviewRatingBounds(t *testing.T) {
	svc := services.NewReviewService(&memoryReviewRepository{})

	for _, rating := range []int{0, -1, 6} {
		err := svc.Create("user-1", "Ada L", &models.Review{ProductID: "prod-1", Rating: rating})
		assert.ErrorContains(t, err, "between 1 and 5", "rating %d", rating)
	}
}

func TestReviewApprovalControlsVisibility(t *testing.T) {
	repo := &memoryReviewRepository{}
	svc := services.NewReviewService(repo)

	review := &models.Review{ProductID: "prod-1", Rating: 4, Body: "Nice"}
	require.NoError(t, svc.Create("user-1", "Ada L", review))

	require.NoError(t, svc.SetApproval(review.ID, true))
	visible, err := svc.ApprovedForProduct("prod-1")
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	require.NoError(t, svc.SetApproval(review.ID, false))
	visible, err = svc.ApprovedForProduct("prod-1")
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestReviewSummaryAveragesApprovedOnly(t *testing.T) {
	repo := &memoryReviewRepository{}
	svc := services.NewReviewService(repo)

	ratings := []int{5, 4, 2}
	for _, rating := range ratings {
		review := &models.Review{ProductID: "prod-1", Rating: rating}
		require.NoError(t, svc.Create("user-1", "Ada L", review))
		require.NoError(t, svc.SetApproval(review.ID, true))
	}
	// Unapproved reviews stay out of the aggregate.
	require.NoError(t, svc.Create("user-2", "Bob", &models.Review{ProductID: "prod-1", Rating: 1}))

	summary, err := svc.SummaryForProduct("prod-1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.ReviewCount)
	assert.InDelta(t, 11.0/3.0, summary.AverageRating, 1e-9)
}

func TestReviewSummaryEmptyProduct(t *testing.T) {
	svc := services.NewReviewService(&memoryReviewRepository{})

	summary, err := svc.SummaryForProduct("prod-none")
	require.NoError(t, err)
	assert.Zero(t, summary.ReviewCount)
	assert.Zero(t, summary.AverageRating)
}
