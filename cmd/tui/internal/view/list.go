package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

type listState int

const (
	listStateAskUser listState = iota
	listStateBrowse
)

type ListModel struct {
	CommonModel
	txService *transaction.Service

	state listState
	form  *huh.Form
	table table.Model
	txs   []*transaction.Transaction

	// Filter cycling
	kindFilterIdx int

	username string
	filter   transaction.ListFilter
	loading  bool
	err      error
}

func NewListModel(txSvc *transaction.Service) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Kind", Width: 8},
		{Title: "Category", Width: 18},
		{Title: "Amount", Width: 12},
		{Title: "Note", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := ListModel{
		txService: txSvc,
		table:     t,
		filter:    transaction.ListFilter{},
	}
	m.form = usernameForm(&m.username)

	return m
}

func usernameForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(value).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m ListModel) Title() string { return "Transactions" }
func (m ListModel) ShortHelp() string {
	if m.state == listStateAskUser {
		return "Enter: confirm | Esc: back"
	}
	return "Esc: back | k: kind filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case listStateAskUser:
		return m.updateAskUser(msg)
	case listStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m ListModel) updateAskUser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.username = strings.TrimSpace(m.form.GetString("username"))
	m.state = listStateBrowse
	m.loading = true

	return m, m.loadTxsCmd()
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "k":
			m.kindFilterIdx = (m.kindFilterIdx + 1) % 3
			m.applyFilter()

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) View() string {
	if m.state == listStateAskUser {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	kindLabels := []string{"All", "Income", "Expense"}

	header := fmt.Sprintf(
		"%s | [k] Kind: %s",
		m.username,
		activeStyle(kindLabels[m.kindFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ListModel) applyFilter() {
	switch m.kindFilterIdx {
	case 1:
		m.filter.Kind = new(transaction.KindIncome)
	case 2:
		m.filter.Kind = new(transaction.KindExpense)
	default:
		m.filter.Kind = nil
	}
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Kind),
			string(tx.Category),
			FormatAmount(tx.Amount),
			tx.Note,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	username := strings.TrimSpace(m.username)
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, username, filter)

		return loadListMsg{txs: txs, err: err}
	}
}
