package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/budgetbadger/budgetbadger/internal/importer/statement"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Ledger(t *testing.T) {
	csv := `Date,Kind,Category,Amount,Note
2026-01-05,income,Salary,2500.00,January payroll
2026-01-12,expense,Groceries,84.30,weekly shop
`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, date(2026, 1, 5), params[0].Date)
	assert.Equal(t, transaction.KindIncome, params[0].Kind)
	assert.Equal(t, transaction.CategorySalary, params[0].Category)
	assert.True(t, params[0].Amount.Equal(decimal.RequireFromString("2500")))
	assert.Equal(t, "January payroll", params[0].Note)

	assert.Equal(t, date(2026, 1, 12), params[1].Date)
	assert.Equal(t, transaction.KindExpense, params[1].Kind)
	assert.Equal(t, transaction.CategoryGroceries, params[1].Category)
	assert.True(t, params[1].Amount.Equal(decimal.RequireFromString("84.30")))
}

func TestParser_BankSemicolon(t *testing.T) {
	csv := `Account statement - 31-01-2026
Holder;JANE DOE
Currency;EUR

Date;Value date;Description;Debit;Credit
30-01-2026;30-01-2026;SUPERMARKET CITY;588,74;
09-01-2026;09-01-2026;WIRE INBOUND;;8.608,52
`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, date(2026, 1, 30), params[0].Date)
	assert.Equal(t, transaction.KindExpense, params[0].Kind)
	assert.Equal(t, transaction.CategoryOtherExpenses, params[0].Category)
	assert.True(t, params[0].Amount.Equal(decimal.RequireFromString("588.74")))
	assert.Equal(t, "SUPERMARKET CITY", params[0].Note)

	assert.Equal(t, date(2026, 1, 9), params[1].Date)
	assert.Equal(t, transaction.KindIncome, params[1].Kind)
	assert.Equal(t, transaction.CategoryOtherIncomes, params[1].Category)
	assert.True(t, params[1].Amount.Equal(decimal.RequireFromString("8608.52")))
}

func TestParser_LedgerDefaultsCategory(t *testing.T) {
	csv := `Date,Kind,Category,Amount,Note
2026-01-05,expense,,12.00,bus ticket
`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, transaction.CategoryOtherExpenses, params[0].Category)
}

func TestParser_LedgerCategoryKindMismatch(t *testing.T) {
	csv := `Date,Kind,Category,Amount,Note
2026-01-05,expense,Salary,12.00,
`

	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "Salary")
}

func TestParser_Windows1252Encoding(t *testing.T) {
	utf8CSV := "Date;Description;Debit;Credit\n30-01-2026;CAFÉ CENTRAL;10,00;\n"

	encoder := charmap.Windows1252.NewEncoder()
	rawBytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := statement.NewParser()
	params, err := p.Parse(bytes.NewReader(rawBytes))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "CAFÉ CENTRAL", params[0].Note)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random,MetaData
Amount,Note,Kind,Date,Category,Ignored
10.00,ORDER_TEST,income,2026-01-30,Gifts,XXX
`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "ORDER_TEST", params[0].Note)
	assert.Equal(t, transaction.CategoryGifts, params[0].Category)
	assert.True(t, params[0].Amount.Equal(decimal.RequireFromString("10")))
}

func TestParser_EmptyFile(t *testing.T) {
	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching statement format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Date,Kind,Category,Amount,Note`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Date;Description;Debit;Credit
30-01-2026;GROCERIES TOWN;10,00;
Total;;10,00;
`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
}

func TestParser_SkipsUnknownKind(t *testing.T) {
	csv := `Date,Kind,Category,Amount,Note
2026-01-05,transfer,,100.00,between accounts
2026-01-06,income,Salary,100.00,
`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, transaction.KindIncome, params[0].Kind)
}

func TestParser_LargeEuropeanAmounts(t *testing.T) {
	csv := `Date;Description;Debit;Credit
30-01-2026;BIG TRANSFER;1.234.567,89;
`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.True(t, params[0].Amount.Equal(decimal.RequireFromString("1234567.89")))
}
