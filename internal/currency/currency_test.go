package currency_test

import (
	"testing"

	"storefront/internal/currency"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, currency.EUR, currency.Normalize("eur"))
	assert.Equal(t, currency.GBP, currency.Normalize(" GBP "))
	assert.Equal(t, currency.PKR, currency.Normalize("pkr"))
	assert.Equal(t, currency.USD, currency.Normalize(""))
	assert.Equal(t, currency.USD, currency.Normalize("DOGE"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$19.99", currency.Format(19.99, currency.USD))
	assert.Equal(t, "€18.39", currency.Format(19.99, currency.EUR))
	assert.Equal(t, "£15.79", currency.Format(19.99, currency.GBP))
	// PKR renders without decimals.
	assert.Equal(t, "Rs 5557", currency.Format(19.99, currency.PKR))
}

func TestConvert(t *testing.T) {
	assert.InDelta(t, 100.0, currency.Convert(100, currency.USD), 1e-9)
	assert.InDelta(t, 92.0, currency.Convert(100, currency.EUR), 1e-9)
	assert.InDelta(t, 100.0, currency.Convert(100, currency.Code("??")), 1e-9)
}
