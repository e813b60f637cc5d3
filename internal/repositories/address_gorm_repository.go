package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// GetByUser retrieves all addresses for a user, default first.
func (r *GORMAddressRepository) GetByUser(userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

// GetByID retrieves a single address, scoped to the owning user.
func (r *GORMAddressRepository) GetByID(userID, id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address %s for user %s: %w", id, userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get address %s: %w", id, err)
	}
	return &address, nil
}

// Create creates a new address. The first address a user saves becomes
// their default automatically.
func (r *GORMAddressRepository) Create(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Address{}).Where("user_id = ?", address.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			address.IsDefault = true
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update updates an existing address, scoped to the owning user. The
// IsDefault flag is not touched here; use SetDefault for that.
func (r *GORMAddressRepository) Update(address *models.Address) error {
	res := r.db.Model(&models.Address{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]interface{}{
			"full_name": address.FullName,
			"line1":     address.Line1,
			"line2":     address.Line2,
			"city":      address.City,
			"state":     address.State,
			"post_code": address.PostCode,
			"country":   address.Country,
			"phone":     address.Phone,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update address %s: %w", address.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address %s for update: %w", address.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an address, scoped to the owning user.
func (r *GORMAddressRepository) Delete(userID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete address %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// SetDefault promotes one address to default. The clear-then-set pair
// runs inside a single transaction so at most one default can ever be
// observed.
func (r *GORMAddressRepository) SetDefault(userID, id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Address{}).
			Where("id = ? AND user_id = ?", id, userID).Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("address %s for user %s: %w", id, userID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to set default address %s: %w", id, err)
	}
	return nil
}
