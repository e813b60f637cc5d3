// Package currency formats catalog prices for display. Amounts are
// stored in the base currency (USD); conversion uses a fixed rate table
// with no external call.
package currency

import (
	"fmt"
	"strings"
)

// Code identifies a display currency.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	PKR Code = "PKR"
)

type currencyInfo struct {
	symbol   string
	rate     float64 // units per 1 USD
	decimals int
}

var currencies = map[Code]currencyInfo{
	USD: {symbol: "$", rate: 1.0, decimals: 2},
	EUR: {symbol: "€", rate: 0.92, decimals: 2},
	GBP: {symbol: "£", rate: 0.79, decimals: 2},
	PKR: {symbol: "Rs ", rate: 278.0, decimals: 0},
}

// Normalize maps a raw code string onto a supported Code, falling back
// to USD for anything unknown.
func Normalize(raw string) Code {
	code := Code(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := currencies[code]; ok {
		return code
	}
	return USD
}

// Convert converts a base-currency amount into the given currency.
func Convert(amount float64, code Code) float64 {
	info, ok := currencies[code]
	if !ok {
		info = currencies[USD]
	}
	return amount * info.rate
}

// Format renders a base-currency amount as a display string in the
// given currency, e.g. Format(19.99, EUR) == "€18.39".
func Format(amount float64, code Code) string {
	info, ok := currencies[code]
	if !ok {
		info = currencies[USD]
	}
	return fmt.Sprintf("%s%.*f", info.symbol, info.decimals, amount*info.rate)
}
