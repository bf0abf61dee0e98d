package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/budgetbadger/budgetbadger/internal/encoding"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

// Parser reads CSV statement exports and produces transaction params.
// It auto-detects which format (ledger or bank) is being used by matching
// column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found: expected ledger or bank columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// detectDelimiter sniffs the field separator. Spreadsheet exports in some
// locales use semicolons, so whichever separator dominates wins.
func detectDelimiter(data []byte) rune {
	if bytes.Count(data, []byte(";")) > bytes.Count(data, []byte(",")) {
		return ';'
	}

	return ','
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transactions from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]transaction.CreateParams, error) {
	dateIdx := colOrMissing(cols, p.DateCol)
	noteIdx := colOrMissing(cols, p.NoteCol)

	var params []transaction.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			continue
		}

		amount, kind, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		category, err := parseCategory(p, cols, row, kind)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		params = append(params, transaction.CreateParams{
			Kind:     kind,
			Category: category,
			Amount:   amount,
			Date:     date,
			Note:     cellValue(row, noteIdx),
		})
	}

	return params, nil
}

// dateLayouts are tried in order. Ledger exports use ISO dates, bank exports
// use day-first dates.
var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// parseDate tries to parse a date from the given cell index.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return transaction.Day(t), true
		}
	}

	return time.Time{}, false
}

// parseAmount extracts the amount and transaction kind from a row based on the profile's amount mode.
func parseAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, transaction.Kind, bool) {
	switch p.AmountMode {
	case amountTyped:
		return parseTypedAmount(row, cols[p.AmountCol], cols[p.KindCol])
	case amountSplit:
		return parseSplitAmount(row, cols[p.DebitCol], cols[p.CreditCol])
	}

	return decimal.Zero, "", false
}

// parseTypedAmount handles an amount column paired with an explicit kind column.
func parseTypedAmount(row []string, amountIdx, kindIdx int) (decimal.Decimal, transaction.Kind, bool) {
	s := cellValue(row, amountIdx)
	if s == "" {
		return decimal.Zero, "", false
	}

	amount, err := parseDecimal(s)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, "", false
	}

	switch strings.ToLower(cellValue(row, kindIdx)) {
	case "income":
		return amount, transaction.KindIncome, true
	case "expense":
		return amount, transaction.KindExpense, true
	}

	return decimal.Zero, "", false
}

// parseSplitAmount handles separate debit/credit columns.
func parseSplitAmount(row []string, debitIdx, creditIdx int) (decimal.Decimal, transaction.Kind, bool) {
	if s := cellValue(row, debitIdx); s != "" {
		amount, err := parseDecimal(s)
		if err == nil && !amount.IsZero() {
			return amount.Abs(), transaction.KindExpense, true
		}
	}

	if s := cellValue(row, creditIdx); s != "" {
		amount, err := parseDecimal(s)
		if err == nil && !amount.IsZero() {
			return amount.Abs(), transaction.KindIncome, true
		}
	}

	return decimal.Zero, "", false
}

// parseCategory resolves a row's category. The ledger format names one
// explicitly; bank rows fall back to the catch-all category for their kind.
func parseCategory(p *Profile, cols colIndex, row []string, kind transaction.Kind) (transaction.Category, error) {
	if p.CategoryCol != "" {
		if s := cellValue(row, colOrMissing(cols, p.CategoryCol)); s != "" {
			category := transaction.Category(s)
			if !category.ValidFor(kind) {
				return "", fmt.Errorf("category %q is not a %s category", s, kind)
			}

			return category, nil
		}
	}

	if kind == transaction.KindIncome {
		return transaction.CategoryOtherIncomes, nil
	}

	return transaction.CategoryOtherExpenses, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func colOrMissing(cols colIndex, name string) int {
	if idx, ok := cols[name]; ok {
		return idx
	}

	return -1
}
