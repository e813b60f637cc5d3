package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// AddressService manages a user's address book. The at-most-one-default
// invariant lives in the repository, which performs the clear-then-set
// pair inside one transaction.
type AddressService struct {
	repo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repositories.AddressRepository) *AddressService {
	return &AddressService{
		repo: repo,
	}
}

// List returns the user's addresses, default first.
func (s *AddressService) List(userID string) ([]models.Address, error) {
	return s.repo.GetByUser(userID)
}

// Create saves a new address for the user.
func (s *AddressService) Create(userID string, address *models.Address) error {
	address.UserID = userID
	return s.repo.Create(address)
}

// Update edits an existing address, scoped to the owning user.
func (s *AddressService) Update(userID string, address *models.Address) error {
	if address.ID == "" {
		return fmt.Errorf("address id is required for update")
	}
	address.UserID = userID
	return s.repo.Update(address)
}

// Delete removes an address, scoped to the owning user.
func (s *AddressService) Delete(userID, id string) error {
	return s.repo.Delete(userID, id)
}

// SetDefault promotes one address to the user's default.
func (s *AddressService) SetDefault(userID, id string) error {
	return s.repo.SetDefault(userID, id)
}
