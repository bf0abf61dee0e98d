package social_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetbadger/budgetbadger/internal/social"
)

func TestService_Follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := social.NewMockRepository(ctrl)
	svc := social.NewService(repo)

	repo.EXPECT().CreateEdge(gomock.Any(), "alice", "bob").Return(nil)

	require.NoError(t, svc.Follow(context.Background(), "alice", "bob"))
}

func TestService_Follow_Self(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := social.NewService(social.NewMockRepository(ctrl))

	err := svc.Follow(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, social.ErrSelfFollow)
}

func TestService_Followees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := social.NewMockRepository(ctrl)
	svc := social.NewService(repo)

	repo.EXPECT().Followees(gomock.Any(), "alice").Return([]string{"bob", "carol"}, nil)

	followees, err := svc.Followees(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, followees)
}
