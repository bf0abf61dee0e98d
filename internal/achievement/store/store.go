package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// userLockKey derives a stable advisory-lock key from the username, so
// concurrent recomputations for the same user serialize on the upsert.
func userLockKey(username string) int64 {
	h := fnv.New64a()
	h.Write([]byte(username))

	return int64(h.Sum64())
}

// UpsertSnapshot replaces the user's snapshot row wholesale. The write is a
// single statement under a per-user advisory lock, so leaderboard readers
// never observe a half-updated row and racing recomputes cannot interleave.
func (s *Store) UpsertSnapshot(ctx context.Context, snap *achievement.Snapshot) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot tx: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", userLockKey(snap.Username)); err != nil {
		return fmt.Errorf("acquiring snapshot lock: %w", err)
	}

	query := `
		INSERT INTO achievement_snapshots (username, points, total_income, total_expense, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (username) DO UPDATE SET
			points = EXCLUDED.points,
			total_income = EXCLUDED.total_income,
			total_expense = EXCLUDED.total_expense,
			updated_at = NOW()
		RETURNING updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		snap.Username,
		snap.Points,
		snap.TotalIncome,
		snap.TotalExpense,
	).Scan(&snap.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	return nil
}

func (s *Store) GetSnapshot(ctx context.Context, username string) (*achievement.Snapshot, error) {
	query := `
		SELECT username, points, total_income, total_expense, updated_at
		FROM achievement_snapshots
		WHERE username = $1
	`

	var snap achievement.Snapshot

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&snap.Username, &snap.Points, &snap.TotalIncome, &snap.TotalExpense, &snap.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, achievement.ErrNotFound
		}

		return nil, fmt.Errorf("getting snapshot: %w", err)
	}

	return &snap, nil
}
