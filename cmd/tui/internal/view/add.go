package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

type addState int

const (
	addStateForm addState = iota
	addStateSaving
	addStateDone
)

type AddModel struct {
	CommonModel
	txService    *transaction.Service
	scoreService *achievement.Service

	state addState
	form  *huh.Form
	err   error

	// Form bindings
	formUsername string
	formKind     string
	formCategory string
	formAmount   string
	formDate     string
	formNote     string

	savedUser   string
	savedPoints int
}

func NewAddModel(txSvc *transaction.Service, scoreSvc *achievement.Service) AddModel {
	m := AddModel{
		txService:    txSvc,
		scoreService: scoreSvc,
		formKind:     string(transaction.KindExpense),
		formDate:     FormatDate(time.Now()),
	}
	m.form = m.buildForm()

	return m
}

func (m AddModel) Title() string     { return "Add Transaction" }
func (m AddModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m AddModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(&m.formUsername).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Expense", string(transaction.KindExpense)),
					huh.NewOption("Income", string(transaction.KindIncome)),
				).
				Value(&m.formKind),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					return categoryOptions(transaction.Kind(m.formKind))
				}, &m.formKind).
				Value(&m.formCategory),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("12.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if d.LessThan(transaction.MinAmount) {
						return fmt.Errorf("amount must be at least %s", transaction.MinAmount)
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("note").
				Title("Note").
				Value(&m.formNote),
		),
	).WithWidth(50).WithShowHelp(false)
}

func categoryOptions(kind transaction.Kind) []huh.Option[string] {
	categories := transaction.CategoriesFor(kind)

	opts := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}

	return opts
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case addSaveMsg:
		m.state = addStateDone
		m.err = msg.err
		m.savedUser = msg.username
		m.savedPoints = msg.points

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == addStateDone {
			return m, Back
		}
	}

	if m.state != addStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = addStateSaving

	return m, m.saveCmd()
}

func (m AddModel) View() string {
	switch m.state {
	case addStateSaving:
		return lipgloss.NewStyle().Padding(1).Render("Saving...")

	case addStateDone:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(1).Render(
				lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
			)
		}

		return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf(
			"Saved. %s now has %d points.\n\nPress any key to go back.",
			m.savedUser, m.savedPoints,
		))
	}

	return lipgloss.NewStyle().Padding(1).Render(m.form.View())
}

type addSaveMsg struct {
	username string
	points   int
	err      error
}

func (m AddModel) saveCmd() tea.Cmd {
	username := strings.TrimSpace(m.form.GetString("username"))
	kind := transaction.Kind(m.form.GetString("kind"))
	category := transaction.Category(m.form.GetString("category"))
	amountStr := strings.TrimSpace(m.form.GetString("amount"))
	dateStr := strings.TrimSpace(m.form.GetString("date"))
	note := m.form.GetString("note")

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return addSaveMsg{username: username, err: err}
		}

		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return addSaveMsg{username: username, err: err}
		}

		if _, err := m.txService.Create(ctx, transaction.CreateParams{
			Username: username,
			Kind:     kind,
			Category: category,
			Amount:   amount,
			Date:     date,
			Note:     note,
		}); err != nil {
			return addSaveMsg{username: username, err: err}
		}

		snap, err := m.scoreService.RecomputeUser(ctx, username)
		if err != nil {
			return addSaveMsg{username: username, err: err}
		}

		return addSaveMsg{username: username, points: snap.Points}
	}
}
