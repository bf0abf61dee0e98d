package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectSnapshotColumns = `
	s.username, s.points, s.total_income, s.total_expense, s.updated_at
`

// TopSnapshots returns the highest-scoring snapshot rows. Ties break on
// username ascending so repeated reads rank identically.
func (s *Store) TopSnapshots(ctx context.Context, limit int) ([]*achievement.Snapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + `
		FROM achievement_snapshots s
		ORDER BY s.points DESC, s.username ASC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying global leaderboard: %w", err)
	}
	defer rows.Close()

	return collectSnapshots(rows)
}

// TopFollowedSnapshots restricts the ranking to users the follower follows.
func (s *Store) TopFollowedSnapshots(ctx context.Context, follower string, limit int) ([]*achievement.Snapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + `
		FROM achievement_snapshots s
		INNER JOIN follow_edges f ON f.followee = s.username
		WHERE f.follower = $1
		ORDER BY s.points DESC, s.username ASC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, follower, limit)
	if err != nil {
		return nil, fmt.Errorf("querying followed leaderboard: %w", err)
	}
	defer rows.Close()

	return collectSnapshots(rows)
}

func collectSnapshots(rows *sql.Rows) ([]*achievement.Snapshot, error) {
	var snaps []*achievement.Snapshot

	for rows.Next() {
		var snap achievement.Snapshot
		if err := rows.Scan(
			&snap.Username, &snap.Points, &snap.TotalIncome, &snap.TotalExpense, &snap.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}

		snaps = append(snaps, &snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot rows: %w", err)
	}

	return snaps, nil
}
