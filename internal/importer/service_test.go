package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbadger/budgetbadger/internal/importer"
)

func TestService_Import_StampsUsername(t *testing.T) {
	csv := `Date,Kind,Category,Amount,Note
2026-01-05,income,Salary,2500.00,payroll
2026-01-12,expense,Groceries,84.30,
`

	s := importer.NewService()
	params, err := s.Import(importer.FormatStatement, "alice", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	for _, p := range params {
		assert.Equal(t, "alice", p.Username)
	}
}

func TestService_Import_UnknownFormat(t *testing.T) {
	s := importer.NewService()
	_, err := s.Import(importer.Format("pdf"), "alice", strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import format")
}
