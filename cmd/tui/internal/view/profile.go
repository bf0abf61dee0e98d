package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/badge"
	"github.com/budgetbadger/budgetbadger/internal/social"
)

type profileState int

const (
	profileStateAskUser profileState = iota
	profileStateShow
)

type ProfileModel struct {
	CommonModel
	scoreService  *achievement.Service
	badgeService  *badge.Service
	socialService *social.Service

	state profileState
	form  *huh.Form

	username   string
	snapshot   *achievement.Snapshot
	assignment *badge.Assignment
	followers  int
	following  int

	loading bool
	err     error
}

func NewProfileModel(scoreSvc *achievement.Service, badgeSvc *badge.Service, socialSvc *social.Service) ProfileModel {
	m := ProfileModel{
		scoreService:  scoreSvc,
		badgeService:  badgeSvc,
		socialService: socialSvc,
	}
	m.form = usernameForm(&m.username)

	return m
}

func (m ProfileModel) Title() string     { return "Profile" }
func (m ProfileModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m ProfileModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(loadProfileMsg); ok {
		m.loading = false
		m.err = loaded.err
		m.snapshot = loaded.snapshot
		m.assignment = loaded.assignment
		m.followers = loaded.followers
		m.following = loaded.following

		return m, nil
	}

	if m.state == profileStateAskUser {
		return m.updateAskUser(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m ProfileModel) updateAskUser(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	m.state = profileStateShow
	m.loading = true

	return m, m.loadCmd()
}

func (m ProfileModel) View() string {
	if m.state == profileStateAskUser {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading profile...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render(strings.TrimSpace(m.username))

	body := fmt.Sprintf(
		"%s\n\n"+
			"Points:   %d\n"+
			"Income:   %s\n"+
			"Expenses: %s\n\n"+
			"Badges\n"+
			"  Points:  %s\n"+
			"  Income:  %s\n"+
			"  Expense: %s\n\n"+
			"Followers: %d | Following: %d",
		title,
		m.snapshot.Points,
		FormatAmount(m.snapshot.TotalIncome),
		FormatAmount(m.snapshot.TotalExpense),
		FormatTier(m.assignment.PointsTier),
		FormatTier(m.assignment.IncomeTier),
		FormatTier(m.assignment.ExpenseTier),
		m.followers,
		m.following,
	)

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(body)

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

// Messages

type loadProfileMsg struct {
	snapshot   *achievement.Snapshot
	assignment *badge.Assignment
	followers  int
	following  int
	err        error
}

func (m ProfileModel) loadCmd() tea.Cmd {
	username := strings.TrimSpace(m.username)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snapshot, err := m.scoreService.Snapshot(ctx, username)
		if err != nil {
			return loadProfileMsg{err: err}
		}

		assignment, err := m.badgeService.Classify(ctx, username)
		if err != nil {
			return loadProfileMsg{err: err}
		}

		followers, err := m.socialService.FollowerCount(ctx, username)
		if err != nil {
			return loadProfileMsg{err: err}
		}

		following, err := m.socialService.FollowingCount(ctx, username)
		if err != nil {
			return loadProfileMsg{err: err}
		}

		return loadProfileMsg{
			snapshot:   snapshot,
			assignment: assignment,
			followers:  followers,
			following:  following,
		}
	}
}
