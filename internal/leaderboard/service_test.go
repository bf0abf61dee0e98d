package leaderboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/leaderboard"
)

func snapshot(username string, points int) *achievement.Snapshot {
	return &achievement.Snapshot{Username: username, Points: points}
}

func TestService_Global(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := leaderboard.NewMockRepository(ctrl)
	recomputer := leaderboard.NewMockRecomputer(ctrl)
	svc := leaderboard.NewService(repo, recomputer)

	recomputer.EXPECT().RecomputeAll(gomock.Any()).Return(map[string]achievement.Result{}, nil)
	repo.EXPECT().TopSnapshots(gomock.Any(), 3).Return([]*achievement.Snapshot{
		snapshot("carol", 900),
		snapshot("alice", 400),
		snapshot("bob", 400),
	}, nil)

	entries, err := svc.Global(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "carol", entries[0].Username)
	assert.Equal(t, 900, entries[0].Points)

	// Equal points rank in stable username order.
	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, "bob", entries[2].Username)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestService_Global_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := leaderboard.NewMockRepository(ctrl)
	recomputer := leaderboard.NewMockRecomputer(ctrl)
	svc := leaderboard.NewService(repo, recomputer)

	recomputer.EXPECT().RecomputeAll(gomock.Any()).Return(nil, nil)
	repo.EXPECT().TopSnapshots(gomock.Any(), leaderboard.DefaultLimit).Return(nil, nil)

	entries, err := svc.Global(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_Global_RefreshFailureFallsBackToSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := leaderboard.NewMockRepository(ctrl)
	recomputer := leaderboard.NewMockRecomputer(ctrl)
	svc := leaderboard.NewService(repo, recomputer)

	recomputer.EXPECT().RecomputeAll(gomock.Any()).Return(nil, errors.New("store down"))
	repo.EXPECT().TopSnapshots(gomock.Any(), leaderboard.DefaultLimit).Return([]*achievement.Snapshot{
		snapshot("alice", 120),
	}, nil)

	entries, err := svc.Global(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)
}

func TestService_Followed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := leaderboard.NewMockRepository(ctrl)
	recomputer := leaderboard.NewMockRecomputer(ctrl)
	svc := leaderboard.NewService(repo, recomputer)

	recomputer.EXPECT().RecomputeAll(gomock.Any()).Return(nil, nil)
	repo.EXPECT().TopFollowedSnapshots(gomock.Any(), "alice", leaderboard.DefaultLimit).Return([]*achievement.Snapshot{
		snapshot("bob", 700),
		snapshot("carol", 200),
	}, nil)

	entries, err := svc.Followed(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestService_Followed_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := leaderboard.NewMockRepository(ctrl)
	recomputer := leaderboard.NewMockRecomputer(ctrl)
	svc := leaderboard.NewService(repo, recomputer)

	recomputer.EXPECT().RecomputeAll(gomock.Any()).Return(nil, nil)
	repo.EXPECT().TopFollowedSnapshots(gomock.Any(), "alice", leaderboard.DefaultLimit).
		Return(nil, errors.New("query failed"))

	_, err := svc.Followed(context.Background(), "alice", 0)
	assert.Error(t, err)
}
