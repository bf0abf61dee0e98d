package leaderboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=leaderboard

// Repository reads ranked snapshot rows. Ordering must be points descending
// with username ascending as the tiebreak, so rankings are deterministic.
type Repository interface {
	TopSnapshots(ctx context.Context, limit int) ([]*achievement.Snapshot, error)
	TopFollowedSnapshots(ctx context.Context, follower string, limit int) ([]*achievement.Snapshot, error)
}

// Recomputer refreshes every user's snapshot before a leaderboard read.
type Recomputer interface {
	RecomputeAll(ctx context.Context) (map[string]achievement.Result, error)
}

type Service struct {
	repo       Repository
	recomputer Recomputer
}

func NewService(repo Repository, recomputer Recomputer) *Service {
	return &Service{repo: repo, recomputer: recomputer}
}

// Global returns the top users by achievement points across all users.
func (s *Service) Global(ctx context.Context, limit int) ([]Entry, error) {
	s.refresh(ctx)

	if limit <= 0 {
		limit = DefaultLimit
	}

	snaps, err := s.repo.TopSnapshots(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading global leaderboard: %w", err)
	}

	return toEntries(snaps), nil
}

// Followed returns the top users by achievement points among those the given
// user follows.
func (s *Service) Followed(ctx context.Context, follower string, limit int) ([]Entry, error) {
	s.refresh(ctx)

	if limit <= 0 {
		limit = DefaultLimit
	}

	snaps, err := s.repo.TopFollowedSnapshots(ctx, follower, limit)
	if err != nil {
		return nil, fmt.Errorf("reading followed leaderboard for %s: %w", follower, err)
	}

	return toEntries(snaps), nil
}

// refresh recomputes all snapshots before serving a read. Failures degrade to
// the last-known snapshot rows instead of failing the view; per-user failures
// inside the batch are already isolated by the aggregator.
func (s *Service) refresh(ctx context.Context) {
	if _, err := s.recomputer.RecomputeAll(ctx); err != nil {
		slog.Warn("leaderboard refresh failed, serving last-known snapshots", "error", err)
	}
}

func toEntries(snaps []*achievement.Snapshot) []Entry {
	entries := make([]Entry, 0, len(snaps))

	for i, snap := range snaps {
		entries = append(entries, Entry{
			Rank:         i + 1,
			Username:     snap.Username,
			Points:       snap.Points,
			TotalIncome:  snap.TotalIncome,
			TotalExpense: snap.TotalExpense,
		})
	}

	return entries
}
