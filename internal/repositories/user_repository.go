package repositories

import "storefront/internal/models"

// UserRepository defines the interface for user data access. Role and
// name fields are mutated through dedicated methods rather than a
// whole-row update so callers cannot accidentally rewrite credentials.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateNames(id, firstName, lastName string) error
	UpdateRole(id string, role models.Role) error
	ListByRole(role models.Role) ([]models.User, error)
}
