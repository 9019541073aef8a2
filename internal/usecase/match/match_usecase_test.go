package match

import (
	"context"
	"testing"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
	"github.com/skillswap-app/skillswap-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(users ...*domain.User) repository.UserRepository {
	return memory.NewUserStore(users)
}

func user(id int, name string) *domain.User {
	return &domain.User{ID: id, Name: name, Level: 1, Badges: []string{"Newbie"}}
}

func TestConnectAwardsBothSides(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, 1, 2))

	a, _ := store.GetByID(ctx, 1)
	b, _ := store.GetByID(ctx, 2)

	for _, u := range []*domain.User{a, b} {
		assert.Equal(t, 25, u.XP)
		assert.Equal(t, 1, u.Level)
		assert.Equal(t, 1, u.Streak)
		assert.True(t, u.HasBadge("First Match"))
	}

	require.Len(t, a.Matches, 1)
	require.Len(t, b.Matches, 1)
	assert.Equal(t, domain.Match{UserID: 2, Status: domain.SwapNotStarted}, a.Matches[0])
	assert.Equal(t, domain.Match{UserID: 1, Status: domain.SwapNotStarted}, b.Matches[0])
}

func TestConnectIsIdempotent(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, 1, 2))
	require.NoError(t, uc.Connect(ctx, 1, 2))
	// Also from the other direction.
	require.NoError(t, uc.Connect(ctx, 2, 1))

	a, _ := store.GetByID(ctx, 1)
	b, _ := store.GetByID(ctx, 2)
	assert.Len(t, a.Matches, 1)
	assert.Len(t, b.Matches, 1)
	assert.Equal(t, 25, a.XP)
	assert.Equal(t, 1, a.Streak)
	assert.Equal(t, 25, b.XP)
	assert.Equal(t, 1, b.Streak)
}

func TestConnectSelfRejected(t *testing.T) {
	store := newStore(user(1, "A"))
	uc := NewMatchUseCase(store)

	err := uc.Connect(context.Background(), 1, 1)
	assert.ErrorIs(t, err, domain.ErrCannotConnectSelf)
}

func TestConnectUnknownUser(t *testing.T) {
	store := newStore(user(1, "A"))
	uc := NewMatchUseCase(store)

	err := uc.Connect(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestConnectLevelRollover(t *testing.T) {
	a := user(1, "A")
	a.XP = 90
	store := newStore(a, user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, 1, 2))

	got, _ := store.GetByID(ctx, 1)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 15, got.XP)
}

func TestUpdateStatusMirrorsBothViews(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, 1, 2))
	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapInProgress))

	a, _ := store.GetByID(ctx, 1)
	b, _ := store.GetByID(ctx, 2)
	assert.Equal(t, domain.SwapInProgress, a.MatchWith(2).Status)
	assert.Equal(t, domain.SwapInProgress, b.MatchWith(1).Status)
}

func TestUpdateStatusInvalidTransitions(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()
	require.NoError(t, uc.Connect(ctx, 1, 2))

	// Skipping a state is invalid.
	assert.ErrorIs(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapCompleted), domain.ErrInvalidTransition)
	// Repeating the current state is invalid.
	assert.ErrorIs(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapNotStarted), domain.ErrInvalidTransition)

	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapInProgress))
	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapCompleted))

	// Completed is terminal: no backward or repeated transition.
	assert.ErrorIs(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapInProgress), domain.ErrInvalidTransition)
	assert.ErrorIs(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapCompleted), domain.ErrInvalidTransition)
}

func TestUpdateStatusWithoutMatch(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)

	err := uc.UpdateStatus(context.Background(), 1, 2, domain.SwapInProgress)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestCompletionAwardsActorOnly(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, 1, 2))
	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapInProgress))
	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapCompleted))

	a, _ := store.GetByID(ctx, 1)
	b, _ := store.GetByID(ctx, 2)

	// Actor: 25 from connect + 50 from completing.
	assert.Equal(t, 75, a.XP)
	// Partner's view is completed too, but no completion XP.
	assert.Equal(t, 25, b.XP)
	assert.Equal(t, domain.SwapCompleted, b.MatchWith(1).Status)
}

func completedPair(t *testing.T) (repository.UserRepository, *MatchUseCase, context.Context) {
	t.Helper()
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()
	require.NoError(t, uc.Connect(ctx, 1, 2))
	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapInProgress))
	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapCompleted))
	return store, uc, ctx
}

func TestRateSession(t *testing.T) {
	store, uc, ctx := completedPair(t)

	require.NoError(t, uc.RateSession(ctx, 1, 2, 4))

	a, _ := store.GetByID(ctx, 1)
	b, _ := store.GetByID(ctx, 2)

	require.NotNil(t, a.MatchWith(2).Rating)
	assert.Equal(t, 4, *a.MatchWith(2).Rating)
	// Rating is per-observer: the teacher's view stays unrated.
	assert.Nil(t, b.MatchWith(1).Rating)

	assert.InDelta(t, 4.0, b.TeacherRating, 1e-9)
	assert.Equal(t, 1, b.TotalRatings)
}

func TestRateSessionImmutable(t *testing.T) {
	store, uc, ctx := completedPair(t)

	require.NoError(t, uc.RateSession(ctx, 1, 2, 4))
	err := uc.RateSession(ctx, 1, 2, 5)
	assert.ErrorIs(t, err, domain.ErrAlreadyRated)

	// The teacher aggregate must not move on the rejected call.
	b, _ := store.GetByID(ctx, 2)
	assert.InDelta(t, 4.0, b.TeacherRating, 1e-9)
	assert.Equal(t, 1, b.TotalRatings)
}

func TestRateSessionRequiresCompletion(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()
	require.NoError(t, uc.Connect(ctx, 1, 2))

	assert.ErrorIs(t, uc.RateSession(ctx, 1, 2, 5), domain.ErrNotCompleted)

	require.NoError(t, uc.UpdateStatus(ctx, 1, 2, domain.SwapInProgress))
	assert.ErrorIs(t, uc.RateSession(ctx, 1, 2, 5), domain.ErrNotCompleted)
}

func TestRateSessionBounds(t *testing.T) {
	_, uc, ctx := completedPair(t)

	assert.ErrorIs(t, uc.RateSession(ctx, 1, 2, 0), domain.ErrInvalidRating)
	assert.ErrorIs(t, uc.RateSession(ctx, 1, 2, 6), domain.ErrInvalidRating)
}

func TestEachRaterCountsOnce(t *testing.T) {
	store := newStore(user(1, "A"), user(2, "B"), user(3, "C"))
	uc := NewMatchUseCase(store)
	ctx := context.Background()

	for _, rater := range []int{1, 3} {
		require.NoError(t, uc.Connect(ctx, rater, 2))
		require.NoError(t, uc.UpdateStatus(ctx, rater, 2, domain.SwapInProgress))
		require.NoError(t, uc.UpdateStatus(ctx, rater, 2, domain.SwapCompleted))
	}

	require.NoError(t, uc.RateSession(ctx, 1, 2, 5))
	require.NoError(t, uc.RateSession(ctx, 3, 2, 3))

	b, _ := store.GetByID(ctx, 2)
	assert.Equal(t, 2, b.TotalRatings)
	assert.InDelta(t, 4.0, b.TeacherRating, 1e-9)
}
