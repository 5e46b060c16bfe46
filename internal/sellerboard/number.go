package sellerboard

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber reads a report measure using '.' as the decimal separator.
// Quotes and surrounding whitespace are stripped; anything that is not a
// plain decimal number is zero.
func ParseNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
