package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/budgetbadger/budgetbadger/internal/leaderboard"
)

type leaderboardState int

const (
	leaderboardStateBrowse leaderboardState = iota
	leaderboardStateAskUser
)

type LeaderboardModel struct {
	CommonModel
	svc *leaderboard.Service

	state leaderboardState
	form  *huh.Form
	table table.Model

	followed bool
	username string
	loading  bool
	err      error
}

func NewLeaderboardModel(svc *leaderboard.Service) LeaderboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "User", Width: 20},
		{Title: "Points", Width: 10},
		{Title: "Income", Width: 14},
		{Title: "Expense", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return LeaderboardModel{svc: svc, table: t, loading: true}
}

func (m LeaderboardModel) Title() string { return "Leaderboard" }
func (m LeaderboardModel) ShortHelp() string {
	return "Esc: back | f: toggle followed | r: refresh"
}

func (m LeaderboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLeaderboardMsg:
		m.loading = false
		m.err = msg.err
		m.refreshTable(msg.entries)

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == leaderboardStateAskUser {
		return m.updateAskUser(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "f":
			if m.followed {
				m.followed = false
				m.loading = true

				return m, m.loadCmd()
			}

			m.state = leaderboardStateAskUser
			m.form = usernameForm(&m.username)

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LeaderboardModel) updateAskUser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = leaderboardStateBrowse
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.username = strings.TrimSpace(m.form.GetString("username"))
	m.state = leaderboardStateBrowse
	m.followed = true
	m.loading = true

	return m, m.loadCmd()
}

func (m LeaderboardModel) View() string {
	if m.state == leaderboardStateAskUser {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading leaderboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	scope := "Global"
	if m.followed {
		scope = fmt.Sprintf("Followed by %s", strings.TrimSpace(m.username))
	}

	header := fmt.Sprintf("[f] Scope: %s", activeStyle(scope))

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

func (m *LeaderboardModel) refreshTable(entries []leaderboard.Entry) {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(e.Rank),
			e.Username,
			strconv.Itoa(e.Points),
			FormatAmount(e.TotalIncome),
			FormatAmount(e.TotalExpense),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadLeaderboardMsg struct {
	entries []leaderboard.Entry
	err     error
}

func (m LeaderboardModel) loadCmd() tea.Cmd {
	followed := m.followed
	username := strings.TrimSpace(m.username)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var (
			entries []leaderboard.Entry
			err     error
		)

		if followed {
			entries, err = m.svc.Followed(ctx, username, 0)
		} else {
			entries, err = m.svc.Global(ctx, 0)
		}

		return loadLeaderboardMsg{entries: entries, err: err}
	}
}
