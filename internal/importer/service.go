package importer

import (
	"fmt"
	"io"

	"github.com/budgetbadger/budgetbadger/internal/importer/statement"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

type Service struct {
	statementParser Parser
}

func NewService() *Service {
	return &Service{
		statementParser: statement.NewParser(),
	}
}

// Import parses an uploaded file and stamps every resulting entry with the
// owning username. Parsers never see usernames, they only produce rows.
func (s *Service) Import(format Format, username string, r io.Reader) ([]transaction.CreateParams, error) {
	var parser Parser

	switch format {
	case FormatStatement:
		parser = s.statementParser
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	params, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}

	for i := range params {
		params[i].Username = username
	}

	return params, nil
}
