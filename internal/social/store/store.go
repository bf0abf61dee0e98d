package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/budgetbadger/budgetbadger/internal/social"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateEdge(ctx context.Context, follower, followee string) error {
	query := `
		INSERT INTO follow_edges (follower, followee, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower, followee) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, follower, followee); err != nil {
		return fmt.Errorf("creating follow edge: %w", err)
	}

	return nil
}

func (s *Store) DeleteEdge(ctx context.Context, follower, followee string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM follow_edges WHERE follower = $1 AND followee = $2`,
		follower, followee)
	if err != nil {
		return fmt.Errorf("deleting follow edge: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return social.ErrNotFound
	}

	return nil
}

func (s *Store) Followees(ctx context.Context, follower string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT followee FROM follow_edges WHERE follower = $1 ORDER BY followee ASC`,
		follower)
	if err != nil {
		return nil, fmt.Errorf("listing followees: %w", err)
	}
	defer rows.Close()

	var followees []string

	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scanning followee: %w", err)
		}

		followees = append(followees, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating followees: %w", err)
	}

	return followees, nil
}

func (s *Store) FollowerCount(ctx context.Context, username string) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM follow_edges WHERE followee = $1`, username)
}

func (s *Store) FollowingCount(ctx context.Context, username string) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM follow_edges WHERE follower = $1`, username)
}

func (s *Store) count(ctx context.Context, query, username string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, query, username).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting follow edges: %w", err)
	}

	return n, nil
}
