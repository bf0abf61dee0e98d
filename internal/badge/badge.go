package badge

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("badge assignment not found")

// Tier is one of seven ordinal badge levels: 1 means none, 7 is the highest.
type Tier int

const (
	MinTier Tier = 1
	MaxTier Tier = 7
)

// Canonical tier breakpoints, shared by achievement points, total income and
// total expense. A total at or above the last breakpoint reaches MaxTier.
var breakpoints = []int64{1000, 2500, 5000, 10000, 25000}

// TierForTotal maps a cumulative total onto a badge tier. The mapping is a
// monotonic non-decreasing step function; zero or negative totals always map
// to MinTier.
func TierForTotal(total decimal.Decimal) Tier {
	if !total.IsPositive() {
		return MinTier
	}

	tier := MinTier + 1

	for _, bp := range breakpoints {
		if total.LessThan(decimal.NewFromInt(bp)) {
			return tier
		}

		tier++
	}

	return MaxTier
}

// TierForPoints maps an achievement-point total onto a badge tier.
func TierForPoints(points int) Tier {
	return TierForTotal(decimal.NewFromInt(int64(points)))
}

// Assignment holds a user's three independently derived badge tiers. The row
// is always derived from the latest achievement snapshot and upserted
// wholesale.
type Assignment struct {
	Username    string
	PointsTier  Tier
	IncomeTier  Tier
	ExpenseTier Tier
	UpdatedAt   time.Time
}
