package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/budgetbadger/budgetbadger/internal/badge"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertAssignment replaces the user's badge row wholesale in one statement.
func (s *Store) UpsertAssignment(ctx context.Context, a *badge.Assignment) error {
	query := `
		INSERT INTO badge_assignments (username, points_tier, income_tier, expense_tier, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (username) DO UPDATE SET
			points_tier = EXCLUDED.points_tier,
			income_tier = EXCLUDED.income_tier,
			expense_tier = EXCLUDED.expense_tier,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Username,
		a.PointsTier,
		a.IncomeTier,
		a.ExpenseTier,
	).Scan(&a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting badge assignment: %w", err)
	}

	return nil
}

func (s *Store) GetAssignment(ctx context.Context, username string) (*badge.Assignment, error) {
	query := `
		SELECT username, points_tier, income_tier, expense_tier, updated_at
		FROM badge_assignments
		WHERE username = $1
	`

	var a badge.Assignment

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&a.Username, &a.PointsTier, &a.IncomeTier, &a.ExpenseTier, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, badge.ErrNotFound
		}

		return nil, fmt.Errorf("getting badge assignment: %w", err)
	}

	return &a, nil
}
