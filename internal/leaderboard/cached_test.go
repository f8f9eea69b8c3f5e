package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// MockBoard is a testify mock of a ladder backend that also projects entries
type MockBoard struct {
	mock.Mock
}

func (m *MockBoard) TopN(ctx context.Context, n int) ([]domain.RankEntry, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankEntry), args.Error(1)
}

func (m *MockBoard) FindOpponents(ctx context.Context, q domain.OpponentQuery) ([]domain.RankEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankEntry), args.Error(1)
}

func (m *MockBoard) UpsertEntry(ctx context.Context, e domain.RankEntry) error {
	return m.Called(ctx, e).Error(0)
}

var ladder = []domain.RankEntry{
	{PlayerID: "a", Rank: 1, Name: "Atticus", Level: 5},
	{PlayerID: "b", Rank: 2, Name: "Brutus", Level: 4},
}

func TestCachedBoardMemoizes(t *testing.T) {
	inner := &MockBoard{}
	inner.On("TopN", mock.Anything, 2).Return(ladder, nil).Once()
	board := NewCachedBoard(inner, 0, 0)
	ctx := context.Background()

	first, err := board.TopN(ctx, 2)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := board.TopN(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Atticus", second[0].Name, "callers get copies")
	inner.AssertExpectations(t)
}

func TestCachedBoardKeysQueries(t *testing.T) {
	inner := &MockBoard{}
	q1 := domain.OpponentQuery{ExcludeID: "c", MinLevel: 1, MaxLevel: 9, BelowRank: 3, Limit: 10}
	q2 := q1
	q2.BelowRank = 2
	inner.On("FindOpponents", mock.Anything, q1).Return(ladder, nil).Once()
	inner.On("FindOpponents", mock.Anything, q2).Return(ladder[:1], nil).Once()
	board := NewCachedBoard(inner, 0, 0)
	ctx := context.Background()

	for range 3 {
		got, err := board.FindOpponents(ctx, q1)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		got, err = board.FindOpponents(ctx, q2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	inner.AssertExpectations(t)
}

func TestCachedBoardErrorsAreNotCached(t *testing.T) {
	inner := &MockBoard{}
	inner.On("TopN", mock.Anything, 5).Return(nil, errors.New("db down")).Once()
	inner.On("TopN", mock.Anything, 5).Return(ladder, nil).Once()
	board := NewCachedBoard(inner, 0, 0)

	_, err := board.TopN(context.Background(), 5)
	require.Error(t, err)
	got, err := board.TopN(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCachedBoardUpsertInvalidatesOnChange(t *testing.T) {
	inner := &MockBoard{}
	inner.On("TopN", mock.Anything, 2).Return(ladder, nil).Twice()
	inner.On("UpsertEntry", mock.Anything, mock.Anything).Return(nil)
	board := NewCachedBoard(inner, 0, 0)
	ctx := context.Background()

	_, err := board.TopN(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, board.UpsertEntry(ctx, ladder[0]))
	_, err = board.TopN(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, board.UpsertEntry(ctx, ladder[0]), "unchanged entry keeps the cache")
	_, err = board.TopN(ctx, 2)
	require.NoError(t, err)

	inner.AssertExpectations(t)
	inner.AssertNumberOfCalls(t, "TopN", 2)
	inner.AssertNumberOfCalls(t, "UpsertEntry", 2)
}
