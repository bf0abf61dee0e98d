package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/budgetbadger/budgetbadger/cmd/tui/internal/view"
	"github.com/budgetbadger/budgetbadger/internal/achievement"
	achievementStore "github.com/budgetbadger/budgetbadger/internal/achievement/store"
	"github.com/budgetbadger/budgetbadger/internal/badge"
	badgeStore "github.com/budgetbadger/budgetbadger/internal/badge/store"
	"github.com/budgetbadger/budgetbadger/internal/config"
	"github.com/budgetbadger/budgetbadger/internal/database"
	"github.com/budgetbadger/budgetbadger/internal/leaderboard"
	leaderboardStore "github.com/budgetbadger/budgetbadger/internal/leaderboard/store"
	"github.com/budgetbadger/budgetbadger/internal/social"
	socialStore "github.com/budgetbadger/budgetbadger/internal/social/store"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
	txStore "github.com/budgetbadger/budgetbadger/internal/transaction/store"
)

type model struct {
	txService          *transaction.Service
	scoreService       *achievement.Service
	badgeService       *badge.Service
	socialService      *social.Service
	leaderboardService *leaderboard.Service

	currentView View

	addView         view.AddModel
	listView        view.ListModel
	leaderboardView view.LeaderboardModel
	profileView     view.ProfileModel
}

type View int

const (
	ViewMenu        View = 0
	ViewAdd         View = 1
	ViewList        View = 2
	ViewLeaderboard View = 3
	ViewProfile     View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	transactions := txStore.New(db)

	txSvc := transaction.NewService(transactions)
	scoreSvc := achievement.NewService(transactions, achievementStore.New(db), cfg.Scoring.BalanceStep)
	badgeSvc := badge.NewService(achievementStore.New(db), badgeStore.New(db))
	socialSvc := social.NewService(socialStore.New(db))
	leaderboardSvc := leaderboard.NewService(leaderboardStore.New(db), scoreSvc)

	return model{
		txService:          txSvc,
		scoreService:       scoreSvc,
		badgeService:       badgeSvc,
		socialService:      socialSvc,
		leaderboardService: leaderboardSvc,
		currentView:        ViewMenu,
		addView:            view.NewAddModel(txSvc, scoreSvc),
		listView:           view.NewListModel(txSvc),
		leaderboardView:    view.NewLeaderboardModel(leaderboardSvc),
		profileView:        view.NewProfileModel(scoreSvc, badgeSvc, socialSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.txService, m.scoreService)

				return m, m.addView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewLeaderboard
				m.leaderboardView = view.NewLeaderboardModel(m.leaderboardService)

				return m, m.leaderboardView.Init()
			case "4":
				m.currentView = ViewProfile
				m.profileView = view.NewProfileModel(m.scoreService, m.badgeService, m.socialService)

				return m, m.profileView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewLeaderboard:
		var newModel tea.Model
		newModel, cmd = m.leaderboardView.Update(msg)
		m.leaderboardView = newModel.(view.LeaderboardModel)
	case ViewProfile:
		var newModel tea.Model
		newModel, cmd = m.profileView.Update(msg)
		m.profileView = newModel.(view.ProfileModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"BudgetBadger TUI\n\n" +
				"1. Add Transaction\n" +
				"2. List Transactions\n" +
				"3. Leaderboard\n" +
				"4. Profile\n\n" +
				"q. Quit",
		)
	case ViewAdd:
		return m.addView.View()
	case ViewList:
		return m.listView.View()
	case ViewLeaderboard:
		return m.leaderboardView.View()
	case ViewProfile:
		return m.profileView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
