package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseDecimal parses an amount that may use either plain or European
// formatting. Examples: "1234.56", "1.234,56" -> 1234.56, "-588,74" -> -588.74.
func parseDecimal(s string) (decimal.Decimal, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return decimal.NewFromString(s)
}
