package achievement

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("achievement snapshot not found")

// Snapshot holds a user's fully recomputed totals. It is the single source of
// truth badges and leaderboards read from, and is always overwritten wholesale
// so recomputation stays idempotent.
type Snapshot struct {
	Username     string
	Points       int
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	UpdatedAt    time.Time
}
