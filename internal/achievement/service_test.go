package achievement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

func datedIncome(category transaction.Category, amount, date string) *transaction.Transaction {
	tx := income(category, amount)
	tx.Date = mustDay(date)

	return tx
}

func datedExpense(category transaction.Category, amount, date string) *transaction.Transaction {
	tx := expense(category, amount)
	tx.Date = mustDay(date)

	return tx
}

func mustDay(date string) time.Time {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	return t
}

func TestService_RecomputeUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, achievement.DefaultBalanceStep)

	incomes := []*transaction.Transaction{
		datedIncome(transaction.CategorySalary, "2500", "2024-01-10"), // 25 * 10 = 250
		datedIncome(transaction.CategoryGifts, "150", "2024-01-11"),   // 1 * 5 = 5
	}
	expenses := []*transaction.Transaction{
		datedExpense(transaction.CategoryGroceries, "300", "2024-01-12"),     // 3 * 5 = 15
		datedExpense(transaction.CategoryEntertainment, "450", "2024-01-13"), // 4 * 2 = 8
	}
	months := []transaction.MonthlyCount{month(2024, time.January, 2, 2)}

	source.EXPECT().ListIncome(gomock.Any(), "badger").Return(incomes, nil)
	source.EXPECT().ListExpenses(gomock.Any(), "badger").Return(expenses, nil)
	source.EXPECT().MonthlyEntryCounts(gomock.Any(), "badger").Return(months, nil)
	snapshots.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snap, err := svc.RecomputeUser(context.Background(), "badger")
	require.NoError(t, err)

	// income 255 + expense 23 + balance floor(253.33/10)*50 = 1250, no
	// consistency or streak bonus.
	assert.Equal(t, 1528, snap.Points)
	assert.True(t, snap.TotalIncome.Equal(decimal.NewFromInt(2650)), "total income %s", snap.TotalIncome)
	assert.True(t, snap.TotalExpense.Equal(decimal.NewFromInt(750)), "total expense %s", snap.TotalExpense)
}

func TestService_RecomputeUser_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, 0)

	incomes := []*transaction.Transaction{
		datedIncome(transaction.CategoryBusiness, "1200", "2024-02-01"),
	}
	expenses := []*transaction.Transaction{
		datedExpense(transaction.CategoryBills, "600", "2024-02-02"),
	}
	months := []transaction.MonthlyCount{month(2024, time.February, 1, 1)}

	source.EXPECT().ListIncome(gomock.Any(), "badger").Return(incomes, nil).Times(2)
	source.EXPECT().ListExpenses(gomock.Any(), "badger").Return(expenses, nil).Times(2)
	source.EXPECT().MonthlyEntryCounts(gomock.Any(), "badger").Return(months, nil).Times(2)
	snapshots.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.RecomputeUser(context.Background(), "badger")
	require.NoError(t, err)

	second, err := svc.RecomputeUser(context.Background(), "badger")
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
	assert.True(t, first.TotalIncome.Equal(second.TotalIncome))
	assert.True(t, first.TotalExpense.Equal(second.TotalExpense))
}

func TestService_RecomputeUser_StreakBonus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, 0)

	// One sub-hundred expense per day for a week: no category points, no
	// balance bonus (no income), only the streak counts.
	var expenses []*transaction.Transaction
	for i := 1; i <= 7; i++ {
		expenses = append(expenses, datedExpense(transaction.CategoryGroceries, "10", mustDay("2024-03-01").AddDate(0, 0, i-1).Format(time.DateOnly)))
	}

	source.EXPECT().ListIncome(gomock.Any(), "badger").Return(nil, nil)
	source.EXPECT().ListExpenses(gomock.Any(), "badger").Return(expenses, nil)
	source.EXPECT().MonthlyEntryCounts(gomock.Any(), "badger").Return([]transaction.MonthlyCount{month(2024, time.March, 0, 7)}, nil)
	snapshots.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snap, err := svc.RecomputeUser(context.Background(), "badger")
	require.NoError(t, err)
	assert.Equal(t, achievement.StreakBonus, snap.Points)
}

func TestService_RecomputeUser_UnknownUserYieldsZeroSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, 0)

	source.EXPECT().ListIncome(gomock.Any(), "ghost").Return(nil, nil)
	source.EXPECT().ListExpenses(gomock.Any(), "ghost").Return(nil, nil)
	source.EXPECT().MonthlyEntryCounts(gomock.Any(), "ghost").Return(nil, nil)
	snapshots.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snap, err := svc.RecomputeUser(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Points)
	assert.True(t, snap.TotalIncome.IsZero())
	assert.True(t, snap.TotalExpense.IsZero())
}

func TestService_RecomputeUser_PointsNeverNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, 0)

	// Heavy non-essential spending: expense points go to -250, snapshot
	// clamps at zero.
	expenses := []*transaction.Transaction{
		datedExpense(transaction.CategoryShopping, "10000", "2024-04-01"),
	}

	source.EXPECT().ListIncome(gomock.Any(), "badger").Return(nil, nil)
	source.EXPECT().ListExpenses(gomock.Any(), "badger").Return(expenses, nil)
	source.EXPECT().MonthlyEntryCounts(gomock.Any(), "badger").Return([]transaction.MonthlyCount{month(2024, time.April, 0, 1)}, nil)
	snapshots.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snap, err := svc.RecomputeUser(context.Background(), "badger")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Points)
}

func TestService_RecomputeAll_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, 0)

	source.EXPECT().ListUsers(gomock.Any()).Return([]string{"alice", "broken", "carol"}, nil)

	for _, u := range []string{"alice", "carol"} {
		source.EXPECT().ListIncome(gomock.Any(), u).Return(nil, nil)
		source.EXPECT().ListExpenses(gomock.Any(), u).Return(nil, nil)
		source.EXPECT().MonthlyEntryCounts(gomock.Any(), u).Return(nil, nil)
	}

	source.EXPECT().ListIncome(gomock.Any(), "broken").Return(nil, errors.New("store down"))

	snapshots.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	results, err := svc.RecomputeAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results["alice"].Err)
	assert.NotNil(t, results["alice"].Snapshot)
	assert.Error(t, results["broken"].Err)
	assert.Nil(t, results["broken"].Snapshot)
	assert.NoError(t, results["carol"].Err)
}

func TestService_RecomputeAll_StopsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, 0)

	source.EXPECT().ListUsers(gomock.Any()).Return([]string{"alice", "bob"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := svc.RecomputeAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestService_Snapshot_FallsBackToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := achievement.NewMockTransactionSource(ctrl)
	snapshots := achievement.NewMockSnapshotRepository(ctrl)
	svc := achievement.NewService(source, snapshots, 0)

	snapshots.EXPECT().GetSnapshot(gomock.Any(), "ghost").Return(nil, achievement.ErrNotFound)

	snap, err := svc.Snapshot(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, "ghost", snap.Username)
	assert.Equal(t, 0, snap.Points)
}
