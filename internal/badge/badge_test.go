package badge_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/budgetbadger/budgetbadger/internal/badge"
)

func TestTierForTotal(t *testing.T) {
	tests := []struct {
		total string
		want  badge.Tier
	}{
		{"-50", 1},
		{"0", 1},
		{"0.01", 2},
		{"999.99", 2},
		{"1000", 3},
		{"1500", 3},
		{"2499.99", 3},
		{"2500", 4},
		{"4999.99", 4},
		{"5000", 5},
		{"9999.99", 5},
		{"10000", 6},
		{"24999.99", 6},
		{"25000", 7},
		{"30000", 7},
		{"1000000", 7},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			got := badge.TierForTotal(decimal.RequireFromString(tt.total))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTierForTotal_Monotonic(t *testing.T) {
	prev := badge.MinTier

	for total := decimal.Zero; total.LessThan(decimal.NewFromInt(30000)); total = total.Add(decimal.NewFromInt(50)) {
		tier := badge.TierForTotal(total)
		assert.GreaterOrEqual(t, tier, prev, "tier decreased at total %s", total)
		assert.GreaterOrEqual(t, tier, badge.MinTier)
		assert.LessOrEqual(t, tier, badge.MaxTier)

		prev = tier
	}

	assert.Equal(t, badge.MaxTier, prev)
}

func TestTierForPoints(t *testing.T) {
	assert.Equal(t, badge.MinTier, badge.TierForPoints(0))
	assert.Equal(t, badge.MinTier, badge.TierForPoints(-10))
	assert.Equal(t, badge.Tier(2), badge.TierForPoints(999))
	assert.Equal(t, badge.Tier(3), badge.TierForPoints(1500))
	assert.Equal(t, badge.MaxTier, badge.TierForPoints(30000))
}
