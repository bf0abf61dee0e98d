package achievement

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

// Category weights applied per full 100 units of an income entry.
var incomeWeights = map[transaction.Category]int{
	transaction.CategorySalary:          10,
	transaction.CategoryBusiness:        15,
	transaction.CategoryGifts:           5,
	transaction.CategoryExtraIncome:     7,
	transaction.CategoryLoan:            3,
	transaction.CategoryInsurancePayout: 8,
	transaction.CategoryOtherIncomes:    6,
}

// Essential expense categories score higher and never attract the
// non-essential spending penalty.
var essentialExpenses = map[transaction.Category]struct{}{
	transaction.CategoryGroceries:  {},
	transaction.CategoryHealthcare: {},
	transaction.CategoryEducation:  {},
	transaction.CategoryFoodDrinks: {},
	transaction.CategoryTransport:  {},
}

const (
	essentialPointsPerHundred    = 5
	nonEssentialPointsPerHundred = 2
	penaltyPointsPerHundred      = 5
)

// penaltyThreshold is the total non-essential spending above which the
// penalty kicks in.
var penaltyThreshold = decimal.NewFromInt(1000)

var hundred = decimal.NewFromInt(100)

// hundreds returns floor(amount/100). Partial hundreds never score.
func hundreds(amount decimal.Decimal) int {
	return int(amount.Div(hundred).Floor().IntPart())
}

// IncomePoints converts an income history into category-weighted points.
// Categories without a weight entry contribute nothing.
func IncomePoints(incomes []*transaction.Transaction) int {
	points := 0

	for _, tx := range incomes {
		points += hundreds(tx.Amount) * incomeWeights[tx.Category]
	}

	return points
}

// ExpensePoints converts an expense history into points. Essential entries
// score 5 per full hundred; everything else scores 2 per full hundred, and
// total non-essential spending above the threshold is penalized at 5 points
// per full hundred over it. The result can be negative.
func ExpensePoints(expenses []*transaction.Transaction) int {
	essentialPoints := 0
	nonEssentialPoints := 0
	nonEssentialSpend := decimal.Zero

	for _, tx := range expenses {
		if _, ok := essentialExpenses[tx.Category]; ok {
			essentialPoints += hundreds(tx.Amount) * essentialPointsPerHundred
			continue
		}

		nonEssentialPoints += hundreds(tx.Amount) * nonEssentialPointsPerHundred
		nonEssentialSpend = nonEssentialSpend.Add(tx.Amount)
	}

	if nonEssentialSpend.GreaterThan(penaltyThreshold) {
		over := nonEssentialSpend.Sub(penaltyThreshold)
		nonEssentialPoints -= hundreds(over) * penaltyPointsPerHundred
	}

	return essentialPoints + nonEssentialPoints
}

// sumAmounts totals the amounts of a transaction list.
func sumAmounts(txs []*transaction.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}

	return total
}
