package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money values are stored and serialized as fixed two-decimal strings
// ("1998.00") and computed with exact decimals, never floats.

func ParseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
