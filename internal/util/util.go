package util

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Prices are stored in minor units; two fraction digits are shown.
const priceExp = -2

// FormatPrice renders a price in cents as a decimal amount, e.g. 250 -> "2.50".
func FormatPrice(cents int) string {
	return decimal.New(int64(cents), priceExp).StringFixed(2)
}

// FormatCurrency is FormatPrice prefixed with a currency symbol.
// A negative amount keeps its sign in front of the symbol.
func FormatCurrency(cents int, symbol string) string {
	if cents < 0 {
		return "-" + symbol + FormatPrice(-cents)
	}

	return symbol + FormatPrice(cents)
}

// ParsePrice parses a decimal amount such as "2.5" or "2,50" into cents.
// More than two fraction digits are rejected instead of rounded.
func ParsePrice(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, errors.New("empty price")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid price %q", s)
	}

	cents := amount.Shift(-priceExp)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, errors.Errorf("price %q has more than two decimals", s)
	}

	return int(cents.IntPart()), nil
}
