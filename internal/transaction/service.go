package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	ListTransactions(ctx context.Context, username string, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	ListIncome(ctx context.Context, username string) ([]*Transaction, error)
	ListExpenses(ctx context.Context, username string) ([]*Transaction, error)
	ListUsers(ctx context.Context) ([]string, error)
	MonthlyEntryCounts(ctx context.Context, username string) ([]MonthlyCount, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Username string
	Kind     Kind
	Category Category
	Amount   decimal.Decimal
	Date     time.Time
	Note     string
}

type ListFilter struct {
	Kind      *Kind
	StartDate *time.Time
	EndDate   *time.Time
}

// MonthlyCount holds income and expense entry counts for one calendar month.
type MonthlyCount struct {
	Month        time.Time
	IncomeCount  int
	ExpenseCount int
}

func (p CreateParams) validate() error {
	if p.Username == "" {
		return ErrMissingUsername
	}

	if p.Amount.LessThan(MinAmount) {
		return ErrAmountTooSmall
	}

	if !p.Category.ValidFor(p.Kind) {
		return fmt.Errorf("%w: %q is not a %s category", ErrCategoryMismatch, p.Category, p.Kind)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := paramsToTransaction(params)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// CreateBatch validates and inserts a set of transactions, typically produced
// by a statement import.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, 0, len(params))

	for i, p := range params {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}

		txs = append(txs, paramsToTransaction(p))
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	return txs, nil
}

func (s *Service) List(ctx context.Context, username string, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, username, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// ListIncome returns the user's full income history in date order.
func (s *Service) ListIncome(ctx context.Context, username string) ([]*Transaction, error) {
	return s.repo.ListIncome(ctx, username)
}

// ListExpenses returns the user's full expense history in date order.
func (s *Service) ListExpenses(ctx context.Context, username string) ([]*Transaction, error) {
	return s.repo.ListExpenses(ctx, username)
}

// ListUsers returns every username with at least one recorded transaction.
func (s *Service) ListUsers(ctx context.Context) ([]string, error) {
	return s.repo.ListUsers(ctx)
}

// MonthlyEntryCounts returns per-month entry counts for the user, oldest first.
func (s *Service) MonthlyEntryCounts(ctx context.Context, username string) ([]MonthlyCount, error) {
	return s.repo.MonthlyEntryCounts(ctx, username)
}

func paramsToTransaction(p CreateParams) *Transaction {
	return &Transaction{
		Username: p.Username,
		Kind:     p.Kind,
		Category: p.Category,
		Amount:   p.Amount,
		Date:     Day(p.Date),
		Note:     p.Note,
	}
}
