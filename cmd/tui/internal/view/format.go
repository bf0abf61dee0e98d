package view

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/badge"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders a monetary amount with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTier renders a badge tier as a star bar, e.g. tier 3 of 7 -> "★★★····".
func FormatTier(t badge.Tier) string {
	filled := int(t)
	if filled < int(badge.MinTier) {
		filled = int(badge.MinTier)
	}

	if filled > int(badge.MaxTier) {
		filled = int(badge.MaxTier)
	}

	return strings.Repeat("★", filled) + strings.Repeat("·", int(badge.MaxTier)-filled)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
