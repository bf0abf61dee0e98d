package leaderboard

import (
	"github.com/shopspring/decimal"
)

// DefaultLimit is the number of entries a leaderboard view shows.
const DefaultLimit = 10

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank         int
	Username     string
	Points       int
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}
