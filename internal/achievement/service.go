package achievement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=achievement

// TransactionSource is the read-only contract the engine consumes from the
// transaction store. A user unknown to the store simply yields empty lists.
type TransactionSource interface {
	ListIncome(ctx context.Context, username string) ([]*transaction.Transaction, error)
	ListExpenses(ctx context.Context, username string) ([]*transaction.Transaction, error)
	ListUsers(ctx context.Context) ([]string, error)
	MonthlyEntryCounts(ctx context.Context, username string) ([]transaction.MonthlyCount, error)
}

// SnapshotRepository persists recomputed totals. Upserts must replace the
// whole row atomically.
type SnapshotRepository interface {
	UpsertSnapshot(ctx context.Context, snap *Snapshot) error
	GetSnapshot(ctx context.Context, username string) (*Snapshot, error)
}

type Service struct {
	source      TransactionSource
	snapshots   SnapshotRepository
	balanceStep int
}

// NewService builds the aggregator. A non-positive balanceStep falls back to
// DefaultBalanceStep.
func NewService(source TransactionSource, snapshots SnapshotRepository, balanceStep int) *Service {
	if balanceStep <= 0 {
		balanceStep = DefaultBalanceStep
	}

	return &Service{
		source:      source,
		snapshots:   snapshots,
		balanceStep: balanceStep,
	}
}

// RecomputeUser rebuilds the user's achievement snapshot from their full
// transaction history and upserts it. The computation never reads previous
// snapshot values, so calling it twice without intervening writes yields
// identical rows.
func (s *Service) RecomputeUser(ctx context.Context, username string) (*Snapshot, error) {
	incomes, err := s.source.ListIncome(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing income for %s: %w", username, err)
	}

	expenses, err := s.source.ListExpenses(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing expenses for %s: %w", username, err)
	}

	months, err := s.source.MonthlyEntryCounts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("counting monthly entries for %s: %w", username, err)
	}

	snap := s.compute(username, incomes, expenses, months)

	if err := s.snapshots.UpsertSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("upserting snapshot for %s: %w", username, err)
	}

	return snap, nil
}

// Result pairs a recomputed snapshot with the error that prevented it, for
// exactly one user.
type Result struct {
	Snapshot *Snapshot
	Err      error
}

// RecomputeAll recomputes every known user independently. One user's failure
// is recorded in the result map and does not abort the rest; cancellation is
// honored between users, leaving finished users correct and the rest stale.
func (s *Service) RecomputeAll(ctx context.Context) (map[string]Result, error) {
	users, err := s.source.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	results := make(map[string]Result, len(users))

	for _, username := range users {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		snap, err := s.RecomputeUser(ctx, username)
		if err != nil {
			slog.Error("recompute failed", "username", username, "error", err)

			results[username] = Result{Err: err}

			continue
		}

		results[username] = Result{Snapshot: snap}
	}

	return results, nil
}

// Snapshot returns the last persisted snapshot for the user. A user without
// one gets a zero snapshot rather than an error.
func (s *Service) Snapshot(ctx context.Context, username string) (*Snapshot, error) {
	snap, err := s.snapshots.GetSnapshot(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &Snapshot{Username: username}, nil
		}

		return nil, err
	}

	return snap, nil
}

func (s *Service) compute(username string, incomes, expenses []*transaction.Transaction, months []transaction.MonthlyCount) *Snapshot {
	totalIncome := sumAmounts(incomes)
	totalExpense := sumAmounts(expenses)

	points := IncomePoints(incomes) + ExpensePoints(expenses)
	points += BalanceBonus(totalIncome, totalExpense, s.balanceStep)
	points += ConsistencyBonus(months)

	dates := make([]time.Time, 0, len(incomes)+len(expenses))
	invalid := 0

	collect := func(txs []*transaction.Transaction) {
		for _, tx := range txs {
			if tx.Date.IsZero() {
				invalid++
				continue
			}

			dates = append(dates, tx.Date)
		}
	}

	collect(incomes)
	collect(expenses)

	if invalid > 0 {
		slog.Warn("transactions without a valid date excluded from streak detection",
			"username", username, "count", invalid)
	}

	if HasStreak(dates) {
		points += StreakBonus
	}

	// The expense penalty can drag the sum below zero; snapshots never do.
	if points < 0 {
		points = 0
	}

	return &Snapshot{
		Username:     username,
		Points:       points,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
	}
}
