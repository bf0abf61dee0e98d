package importer

import (
	"io"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

type Format string

const (
	FormatStatement Format = "statement"
)

type Parser interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
