package achievement

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

// DefaultBalanceStep is the canonical points-per-10%-surplus step for the
// balance bonus.
const DefaultBalanceStep = 50

const (
	consistencyBonus      = 30
	consistencyMinEntries = 5
)

var (
	one = decimal.NewFromInt(1)
	ten = decimal.NewFromInt(10)
)

// BalanceBonus rewards earning more than is spent: every full 10% of income
// above expenses is worth step points. A zero expense total short-circuits to
// 0 so the ratio is never computed.
func BalanceBonus(totalIncome, totalExpense decimal.Decimal, step int) int {
	if !totalExpense.IsPositive() {
		return 0
	}

	ratio := totalIncome.Div(totalExpense)
	if ratio.LessThanOrEqual(one) {
		return 0
	}

	extraPct := ratio.Sub(one).Mul(hundred)

	return int(extraPct.Div(ten).Floor().IntPart()) * step
}

// ConsistencyBonus awards a flat bonus once a user has recorded at least 5
// income entries and at least 5 expense entries across their whole history.
// Counts are summed over all months, not checked per month.
func ConsistencyBonus(months []transaction.MonthlyCount) int {
	incomeEntries := 0
	expenseEntries := 0

	for _, m := range months {
		incomeEntries += m.IncomeCount
		expenseEntries += m.ExpenseCount
	}

	if incomeEntries >= consistencyMinEntries && expenseEntries >= consistencyMinEntries {
		return consistencyBonus
	}

	return 0
}
