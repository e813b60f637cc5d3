package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddress(fullName string) *models.Address {
	return &models.Address{
		FullName: fullName,
		Line1:    "1 Main St",
		City:     "Springfield",
		PostCode: "12345",
		Country:  "US",
	}
}

func defaultCount(addresses []models.Address) int {
	n := 0
	for _, a := range addresses {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	svc := services.NewAddressService(repositories.NewMockAddressRepository())

	first := newAddress("First")
	require.NoError(t, svc.Create("user-1", first))
	assert.True(t, first.IsDefault)

	second := newAddress("Second")
	require.NoError(t, svc.Create("user-1", second))
	assert.False(t, second.IsDefault)

	addresses, err := svc.List("user-1")
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, 1, defaultCount(addresses))
}

func TestSetDefaultKeepsExactlyOneDefault(t *testing.T) {
	repo := repositories.NewMockAddressRepository()
	svc := services.NewAddressService(repo)

	first := newAddress("First")
	second := newAddress("Second")
	third := newAddress("Third")
	require.NoError(t, svc.Create("user-1", first))
	require.NoError(t, svc.Create("user-1", second))
	require.NoError(t, svc.Create("user-1", third))

	require.NoError(t, svc.SetDefault("user-1", second.ID))

	addresses, err := svc.List("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, defaultCount(addresses))
	for _, a := range addresses {
		assert.Equal(t, a.ID == second.ID, a.IsDefault)
	}

	// Promoting an unknown address changes nothing.
	err = svc.SetDefault("user-1", "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	addresses, err = svc.List("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, defaultCount(addresses))
}

func TestAddressOperationsAreScopedToOwner(t *testing.T) {
	svc := services.NewAddressService(repositories.NewMockAddressRepository())

	mine := newAddress("Mine")
	require.NoError(t, svc.Create("user-1", mine))

	// Another user cannot delete or promote it.
	assert.ErrorIs(t, svc.Delete("user-2", mine.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, svc.SetDefault("user-2", mine.ID), repositories.ErrNotFound)

	addresses, err := svc.List("user-1")
	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}

func TestAddressUpdateRequiresID(t *testing.T) {
	svc := services.NewAddressService(repositories.NewMockAddressRepository())

	err := svc.Update("user-1", newAddress("No ID"))
	assert.ErrorContains(t, err, "address id is required")
}
