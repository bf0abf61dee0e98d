package badge

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=badge

// SnapshotSource reads the materialized achievement totals. Badges are a view
// over the snapshot, never computed from raw transactions.
type SnapshotSource interface {
	GetSnapshot(ctx context.Context, username string) (*achievement.Snapshot, error)
}

type Repository interface {
	UpsertAssignment(ctx context.Context, a *Assignment) error
	GetAssignment(ctx context.Context, username string) (*Assignment, error)
}

type Service struct {
	snapshots SnapshotSource
	repo      Repository
}

func NewService(snapshots SnapshotSource, repo Repository) *Service {
	return &Service{snapshots: snapshots, repo: repo}
}

// Classify derives the user's badge tiers from their latest snapshot and
// upserts the assignment. A user without a snapshot gets MinTier across the
// board rather than an error.
func (s *Service) Classify(ctx context.Context, username string) (*Assignment, error) {
	snap, err := s.snapshots.GetSnapshot(ctx, username)
	if err != nil {
		if !errors.Is(err, achievement.ErrNotFound) {
			return nil, fmt.Errorf("reading snapshot for %s: %w", username, err)
		}

		snap = &achievement.Snapshot{Username: username}
	}

	a := &Assignment{
		Username:    username,
		PointsTier:  TierForPoints(snap.Points),
		IncomeTier:  TierForTotal(snap.TotalIncome),
		ExpenseTier: TierForTotal(snap.TotalExpense),
	}

	if err := s.repo.UpsertAssignment(ctx, a); err != nil {
		return nil, fmt.Errorf("upserting badges for %s: %w", username, err)
	}

	return a, nil
}

// Assignment returns the last persisted badge assignment, defaulting to
// MinTier everywhere for users that were never classified.
func (s *Service) Assignment(ctx context.Context, username string) (*Assignment, error) {
	a, err := s.repo.GetAssignment(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &Assignment{
				Username:    username,
				PointsTier:  MinTier,
				IncomeTier:  MinTier,
				ExpenseTier: MinTier,
			}, nil
		}

		return nil, err
	}

	return a, nil
}
