package models_test

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewCartViewDerivesTotals(t *testing.T) {
	view := models.NewCartView([]models.CartItem{
		{ProductID: "p1", Price: 100, Quantity: 2},
		{ProductID: "p2", Price: 9.99, Quantity: 3},
	})
	assert.Equal(t, 5, view.Count)
	assert.InDelta(t, 229.97, view.Subtotal, 1e-9)
}

func TestNewCartViewEmpty(t *testing.T) {
	view := models.NewCartView(nil)
	assert.NotNil(t, view.Items, "items must serialize as [] rather than null")
	assert.Zero(t, view.Count)
	assert.Zero(t, view.Subtotal)
}

func TestUserDisplayName(t *testing.T) {
	cases := []struct {
		user models.User
		want string
	}{
		{models.User{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{models.User{FirstName: "Ada"}, "Ada"},
		{models.User{LastName: "Lovelace"}, "Lovelace"},
		{models.User{Email: "grace@example.com"}, "grace"},
		{models.User{Email: "no-at-sign"}, "no-at-sign"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.user.DisplayName())
	}
}

func TestAddressSnapshotCopiesAllShippingFields(t *testing.T) {
	address := models.Address{
		ID:       "a-1",
		UserID:   "u-1",
		FullName: "Ada Lovelace",
		Line1:    "1 Main St",
		Line2:    "Apt 2",
		City:     "London",
		State:    "LDN",
		PostCode: "E1 6AN",
		Country:  "UK",
		Phone:    "+44 20 0000 0000",
	}
	snapshot := address.Snapshot()
	assert.Equal(t, address.FullName, snapshot.FullName)
	assert.Equal(t, address.Line1, snapshot.Line1)
	assert.Equal(t, address.Line2, snapshot.Line2)
	assert.Equal(t, address.City, snapshot.City)
	assert.Equal(t, address.State, snapshot.State)
	assert.Equal(t, address.PostCode, snapshot.PostCode)
	assert.Equal(t, address.Country, snapshot.Country)
	assert.Equal(t, address.Phone, snapshot.Phone)
}
