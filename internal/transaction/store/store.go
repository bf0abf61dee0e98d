package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.username, t.kind, t.category, t.amount, t.date, t.note, t.created_at
`

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, username, kind, category, amount, date, note, created_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var kindStr, categoryStr string

	var note sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Username, &kindStr, &categoryStr, &tx.Amount, &tx.Date,
		&note, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Kind = transaction.Kind(kindStr)
	tx.Category = transaction.Category(categoryStr)
	tx.Note = note.String

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (username, kind, category, amount, date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Username,
		tx.Kind,
		tx.Category,
		tx.Amount,
		tx.Date,
		tx.Note,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (username, kind, category, amount, date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, query,
			tx.Username,
			tx.Kind,
			tx.Category,
			tx.Amount,
			tx.Date,
			tx.Note,
		).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, username string, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.username = $1`

	args := []any{username}

	argIdx := 2

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND t.kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date ASC, t.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) ListIncome(ctx context.Context, username string) ([]*transaction.Transaction, error) {
	return s.listByKind(ctx, username, transaction.KindIncome)
}

func (s *Store) ListExpenses(ctx context.Context, username string) ([]*transaction.Transaction, error) {
	return s.listByKind(ctx, username, transaction.KindExpense)
}

func (s *Store) listByKind(ctx context.Context, username string, kind transaction.Kind) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.username = $1 AND t.kind = $2
		ORDER BY t.date ASC, t.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, username, kind)
	if err != nil {
		return nil, fmt.Errorf("listing %s entries: %w", kind, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListUsers returns every username with at least one transaction, in stable
// ascending order.
func (s *Store) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT username FROM transactions ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []string

	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scanning username: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

func (s *Store) MonthlyEntryCounts(ctx context.Context, username string) ([]transaction.MonthlyCount, error) {
	query := `
		SELECT date_trunc('month', date) AS month,
			COUNT(*) FILTER (WHERE kind = 'income') AS income_count,
			COUNT(*) FILTER (WHERE kind = 'expense') AS expense_count
		FROM transactions
		WHERE username = $1
		GROUP BY month
		ORDER BY month ASC
	`

	rows, err := s.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("counting monthly entries: %w", err)
	}
	defer rows.Close()

	var counts []transaction.MonthlyCount

	for rows.Next() {
		var mc transaction.MonthlyCount
		if err := rows.Scan(&mc.Month, &mc.IncomeCount, &mc.ExpenseCount); err != nil {
			return nil, fmt.Errorf("scanning monthly count: %w", err)
		}

		counts = append(counts, mc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly counts: %w", err)
	}

	return counts, nil
}

func collectTransactions(rows *sql.Rows) ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}
