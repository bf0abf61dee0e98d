package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind represents the direction of a transaction (income or expense).
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category classifies a transaction. Income categories are disjoint from
// expense categories.
type Category string

const (
	// Income categories.
	CategorySalary          Category = "Salary"
	CategoryBusiness        Category = "Business"
	CategoryGifts           Category = "Gifts"
	CategoryExtraIncome     Category = "Extra Income"
	CategoryLoan            Category = "Loan"
	CategoryInsurancePayout Category = "Insurance Payout"
	CategoryInvestments     Category = "Investments"
	CategoryOtherIncomes    Category = "Other Incomes"

	// Expense categories.
	CategoryGroceries     Category = "Groceries"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryFoodDrinks    Category = "Food & Drinks"
	CategoryTransport     Category = "Transport"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryTravel        Category = "Travel"
	CategoryOtherExpenses Category = "Other Expenses"
)

var incomeCategories = map[Category]struct{}{
	CategorySalary:          {},
	CategoryBusiness:        {},
	CategoryGifts:           {},
	CategoryExtraIncome:     {},
	CategoryLoan:            {},
	CategoryInsurancePayout: {},
	CategoryInvestments:     {},
	CategoryOtherIncomes:    {},
}

var expenseCategories = map[Category]struct{}{
	CategoryGroceries:     {},
	CategoryHealthcare:    {},
	CategoryEducation:     {},
	CategoryFoodDrinks:    {},
	CategoryTransport:     {},
	CategoryBills:         {},
	CategoryEntertainment: {},
	CategoryShopping:      {},
	CategoryTravel:        {},
	CategoryOtherExpenses: {},
}

// CategoriesFor returns the categories valid for the given kind, in display
// order.
func CategoriesFor(k Kind) []Category {
	switch k {
	case KindIncome:
		return []Category{
			CategorySalary,
			CategoryBusiness,
			CategoryGifts,
			CategoryExtraIncome,
			CategoryLoan,
			CategoryInsurancePayout,
			CategoryInvestments,
			CategoryOtherIncomes,
		}
	case KindExpense:
		return []Category{
			CategoryGroceries,
			CategoryHealthcare,
			CategoryEducation,
			CategoryFoodDrinks,
			CategoryTransport,
			CategoryBills,
			CategoryEntertainment,
			CategoryShopping,
			CategoryTravel,
			CategoryOtherExpenses,
		}
	}

	return nil
}

// ValidFor reports whether the category belongs to the given kind.
func (c Category) ValidFor(k Kind) bool {
	switch k {
	case KindIncome:
		_, ok := incomeCategories[c]
		return ok
	case KindExpense:
		_, ok := expenseCategories[c]
		return ok
	}

	return false
}

// MinAmount is the smallest accepted transaction amount.
var MinAmount = decimal.New(1, -2) // 0.01

// Transaction represents a single income or expense entry. Transactions are
// immutable once created and owned exclusively by their user.
type Transaction struct {
	ID        uuid.UUID
	Username  string
	Kind      Kind
	Category  Category
	Amount    decimal.Decimal
	Date      time.Time // Calendar day, midnight UTC.
	Note      string
	CreatedAt time.Time
}

// Day normalizes t to a calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
