package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockAddressRepository is an in-memory implementation of AddressRepository.
type MockAddressRepository struct {
	addresses map[string][]models.Address // keyed by user ID
	mu        sync.RWMutex
}

// NewMockAddressRepository creates a new instance of MockAddressRepository.
func NewMockAddressRepository() *MockAddressRepository {
	return &MockAddressRepository{
		addresses: make(map[string][]models.Address),
	}
}

// GetByUser returns a copy of the addresses for a user.
func (r *MockAddressRepository) GetByUser(userID string) ([]models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addresses := make([]models.Address, len(r.addresses[userID]))
	copy(addresses, r.addresses[userID])
	return addresses, nil
}

// GetByID returns a single address, scoped to the owning user.
func (r *MockAddressRepository) GetByID(userID, id string) (*models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, address := range r.addresses[userID] {
		if address.ID == id {
			found := address
			return &found, nil
		}
	}
	return nil, fmt.Errorf("address %s for user %s: %w", id, userID, ErrNotFound)
}

// Create adds a new address; the user's first address becomes default.
func (r *MockAddressRepository) Create(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if len(r.addresses[address.UserID]) == 0 {
		address.IsDefault = true
	}
	r.addresses[address.UserID] = append(r.addresses[address.UserID], *address)
	return nil
}

// Update modifies an existing address.
func (r *MockAddressRepository) Update(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addresses := r.addresses[address.UserID]
	for i := range addresses {
		if addresses[i].ID == address.ID {
			isDefault := addresses[i].IsDefault
			addresses[i] = *address
			addresses[i].IsDefault = isDefault
			return nil
		}
	}
	return fmt.Errorf("address %s for update: %w", address.ID, ErrNotFound)
}

// Delete removes an address.
func (r *MockAddressRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addresses := r.addresses[userID]
	for i := range addresses {
		if addresses[i].ID == id {
			r.addresses[userID] = append(addresses[:i], addresses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("address %s for deletion: %w", id, ErrNotFound)
}

// SetDefault clears every default for the user and promotes one address
// in a single locked step.
func (r *MockAddressRepository) SetDefault(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addresses := r.addresses[userID]
	found := false
	for i := range addresses {
		addresses[i].IsDefault = addresses[i].ID == id
		if addresses[i].ID == id {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("address %s for user %s: %w", id, userID, ErrNotFound)
	}
	return nil
}
