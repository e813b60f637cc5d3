package repositories

import (
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitRepository defines the interface for visit analytics writes.
// Visits are insert-only; nothing in the storefront reads them back.
type VisitRepository interface {
	Create(visit *models.Visit) error
}

// GORMVisitRepository is a GORM implementation of VisitRepository.
type GORMVisitRepository struct {
	db *gorm.DB
}

// NewGORMVisitRepository creates a new instance of GORMVisitRepository.
func NewGORMVisitRepository(db *gorm.DB) *GORMVisitRepository {
	return &GORMVisitRepository{
		db: db,
	}
}

// Create inserts a visit row.
func (r *GORMVisitRepository) Create(visit *models.Visit) error {
	if visit.ID == "" {
		visit.ID = uuid.New().String()
	}
	if err := r.db.Create(visit).Error; err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}
