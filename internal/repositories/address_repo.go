package repositories

import "storefront/internal/models"

// AddressRepository defines the interface for address book data access.
// SetDefault clears every other default for the user and promotes one
// address in the same transaction, so the at-most-one-default invariant
// holds even if the process dies mid-write.
type AddressRepository interface {
	GetByUser(userID string) ([]models.Address, error)
	GetByID(userID, id string) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(userID, id string) error
	SetDefault(userID, id string) error
}
