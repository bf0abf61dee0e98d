package statement

// amountMode determines how amounts and kinds are extracted from a row.
type amountMode int

const (
	// amountTyped means one amount column plus an explicit kind column.
	amountTyped amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a supported CSV export format.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	NoteCol     string
	AmountMode  amountMode
	AmountCol   string // used when AmountMode == amountTyped
	KindCol     string // used when AmountMode == amountTyped
	CategoryCol string // optional, only the ledger format carries one
	DebitCol    string // used when AmountMode == amountSplit
	CreditCol   string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol}

	switch p.AmountMode {
	case amountTyped:
		cols = append(cols, p.AmountCol, p.KindCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "ledger",
		DateCol:     "Date",
		NoteCol:     "Note",
		AmountMode:  amountTyped,
		AmountCol:   "Amount",
		KindCol:     "Kind",
		CategoryCol: "Category",
	},
	{
		Name:       "bank",
		DateCol:    "Date",
		NoteCol:    "Description",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
	},
}
