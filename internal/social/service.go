package social

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=social
type Repository interface {
	CreateEdge(ctx context.Context, follower, followee string) error
	DeleteEdge(ctx context.Context, follower, followee string) error
	Followees(ctx context.Context, follower string) ([]string, error)
	FollowerCount(ctx context.Context, username string) (int, error)
	FollowingCount(ctx context.Context, username string) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Follow records a directed follow edge. Following an already-followed user
// is a no-op; following yourself is rejected.
func (s *Service) Follow(ctx context.Context, follower, followee string) error {
	if follower == followee {
		return ErrSelfFollow
	}

	return s.repo.CreateEdge(ctx, follower, followee)
}

func (s *Service) Unfollow(ctx context.Context, follower, followee string) error {
	return s.repo.DeleteEdge(ctx, follower, followee)
}

// Followees returns the users the given user follows.
func (s *Service) Followees(ctx context.Context, follower string) ([]string, error) {
	return s.repo.Followees(ctx, follower)
}

func (s *Service) FollowerCount(ctx context.Context, username string) (int, error) {
	return s.repo.FollowerCount(ctx, username)
}

func (s *Service) FollowingCount(ctx context.Context, username string) (int, error) {
	return s.repo.FollowingCount(ctx, username)
}
