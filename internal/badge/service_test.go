package badge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/badge"
)

func TestService_Classify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshots := badge.NewMockSnapshotSource(ctrl)
	repo := badge.NewMockRepository(ctrl)
	svc := badge.NewService(snapshots, repo)

	snapshots.EXPECT().GetSnapshot(gomock.Any(), "badger").Return(&achievement.Snapshot{
		Username:     "badger",
		Points:       1500,
		TotalIncome:  decimal.NewFromInt(12000),
		TotalExpense: decimal.NewFromInt(400),
	}, nil)
	repo.EXPECT().UpsertAssignment(gomock.Any(), gomock.Any()).Return(nil)

	a, err := svc.Classify(context.Background(), "badger")
	require.NoError(t, err)

	assert.Equal(t, badge.Tier(3), a.PointsTier)
	assert.Equal(t, badge.Tier(6), a.IncomeTier)
	assert.Equal(t, badge.Tier(2), a.ExpenseTier)
}

func TestService_Classify_MissingSnapshotMapsToMinTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshots := badge.NewMockSnapshotSource(ctrl)
	repo := badge.NewMockRepository(ctrl)
	svc := badge.NewService(snapshots, repo)

	snapshots.EXPECT().GetSnapshot(gomock.Any(), "ghost").Return(nil, achievement.ErrNotFound)
	repo.EXPECT().UpsertAssignment(gomock.Any(), gomock.Any()).Return(nil)

	a, err := svc.Classify(context.Background(), "ghost")
	require.NoError(t, err)

	assert.Equal(t, badge.MinTier, a.PointsTier)
	assert.Equal(t, badge.MinTier, a.IncomeTier)
	assert.Equal(t, badge.MinTier, a.ExpenseTier)
}

func TestService_Classify_SnapshotReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshots := badge.NewMockSnapshotSource(ctrl)
	repo := badge.NewMockRepository(ctrl)
	svc := badge.NewService(snapshots, repo)

	snapshots.EXPECT().GetSnapshot(gomock.Any(), "badger").Return(nil, errors.New("db down"))

	_, err := svc.Classify(context.Background(), "badger")
	assert.Error(t, err)
}

func TestService_Assignment_DefaultsToMinTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshots := badge.NewMockSnapshotSource(ctrl)
	repo := badge.NewMockRepository(ctrl)
	svc := badge.NewService(snapshots, repo)

	repo.EXPECT().GetAssignment(gomock.Any(), "ghost").Return(nil, badge.ErrNotFound)

	a, err := svc.Assignment(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, badge.MinTier, a.PointsTier)
}
