package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/championship-progression/internal/mocks/domain/match"
	idgen "github.com/riskibarqy/championship-progression/internal/platform/id"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemoryMutator(matches ...match.Match) (*BracketMutator, *memory.MatchRepository) {
	repo := memory.NewMatchRepository(matches, nil)
	return NewBracketMutator(repo, idgen.NewSequenceGenerator("new"), logging.NewNop()), repo
}

func TestBracketMutator_AdvanceWinner_CreatesFixtureAsHome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mutator, repo := newMemoryMutator()

	changed, err := mutator.AdvanceWinner(ctx, "cup", match.RoundFinal, "team-a")
	require.NoError(t, err)
	require.True(t, changed)

	finals, err := repo.ListByRound(ctx, "cup", match.RoundFinal)
	require.NoError(t, err)
	require.Len(t, finals, 1)
	require.Equal(t, "new-1", finals[0].ID)
	require.Equal(t, "team-a", finals[0].HomeTeamID)
	require.Empty(t, finals[0].AwayTeamID)
	require.Equal(t, match.StatusScheduled, finals[0].Status)
}

func TestBracketMutator_AdvanceWinner_FillsOpenSlotThenIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mutator, repo := newMemoryMutator(
		match.Match{ID: "final", ChampionshipID: "cup", Round: match.RoundFinal, AwayTeamID: "team-b"},
	)

	changed, err := mutator.AdvanceWinner(ctx, "cup", match.RoundFinal, "team-a")
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = mutator.AdvanceWinner(ctx, "cup", match.RoundFinal, "team-a")
	require.NoError(t, err)
	require.False(t, changed)

	final, ok, err := repo.GetByID(ctx, "final")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "team-a", final.HomeTeamID)
	require.Equal(t, "team-b", final.AwayTeamID)

	finals, err := repo.ListByRound(ctx, "cup", match.RoundFinal)
	require.NoError(t, err)
	require.Len(t, finals, 1)
}

func TestBracketMutator_AdvanceWinner_FullRoundWritesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mutator, repo := newMemoryMutator(
		match.Match{ID: "final", ChampionshipID: "cup", Round: match.RoundFinal, HomeTeamID: "team-a", AwayTeamID: "team-b"},
	)

	changed, err := mutator.AdvanceWinner(ctx, "cup", match.RoundFinal, "team-c")
	require.NoError(t, err)
	require.False(t, changed)

	finals, err := repo.ListByRound(ctx, "cup", match.RoundFinal)
	require.NoError(t, err)
	require.Len(t, finals, 1)
}

func TestBracketMutator_AdvanceWinner_RejectsBlankInput(t *testing.T) {
	t.Parallel()

	mutator, _ := newMemoryMutator()
	_, err := mutator.AdvanceWinner(context.Background(), "cup", match.RoundFinal, " ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBracketMutator_AdvanceWinner_ConflictFallsBackToOpenSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	mutator := NewBracketMutator(repo, idgen.NewSequenceGenerator("new"), logging.NewNop())

	concurrent := match.Match{ID: "final-x", ChampionshipID: "cup", Round: match.RoundFinal, HomeTeamID: "team-b"}

	repo.On("ListByRound", mock.Anything, "cup", match.RoundFinal).Return([]match.Match{}, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(item match.Match) bool {
		return item.Round == match.RoundFinal && item.HomeTeamID == "team-a"
	})).Return(match.Match{}, match.ErrRoundAlreadyExists).Once()
	repo.On("FindByRound", mock.Anything, "cup", match.RoundFinal, true).Return(concurrent, true, nil).Once()
	repo.On("UpdateSlots", mock.Anything, "final-x", mock.MatchedBy(func(update match.SlotUpdate) bool {
		return update.HomeTeamID == nil && update.AwayTeamID != nil && *update.AwayTeamID == "team-a"
	})).Return(nil).Once()

	changed, err := mutator.AdvanceWinner(ctx, "cup", match.RoundFinal, "team-a")
	require.NoError(t, err)
	require.True(t, changed)
}

func TestBracketMutator_AdvanceWinner_StoreErrorIsReturned(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	mutator := NewBracketMutator(repo, idgen.NewSequenceGenerator("new"), logging.NewNop())
	storeErr := errors.New("connection reset")

	repo.On("ListByRound", mock.Anything, "cup", match.RoundFinal).Return(nil, storeErr).Once()

	_, err := mutator.AdvanceWinner(context.Background(), "cup", match.RoundFinal, "team-a")
	require.ErrorIs(t, err, storeErr)
}

func TestBracketMutator_SeedFinal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates final", func(t *testing.T) {
		mutator, repo := newMemoryMutator()

		changed, err := mutator.SeedFinal(ctx, "liga", "team-a", "team-b")
		require.NoError(t, err)
		require.True(t, changed)

		final, ok, err := repo.FindByRound(ctx, "liga", match.RoundFinal, false)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "team-a", final.HomeTeamID)
		require.Equal(t, "team-b", final.AwayTeamID)
		require.Equal(t, match.StatusScheduled, final.Status)

		changed, err = mutator.SeedFinal(ctx, "liga", "team-a", "team-b")
		require.NoError(t, err)
		require.False(t, changed)
	})

	t.Run("reseeds placeholder final", func(t *testing.T) {
		mutator, repo := newMemoryMutator(
			match.Match{ID: "final", ChampionshipID: "liga", Round: match.RoundFinal, Status: match.StatusLive},
		)

		changed, err := mutator.SeedFinal(ctx, "liga", "team-a", "team-b")
		require.NoError(t, err)
		require.True(t, changed)

		final, _, err := repo.GetByID(ctx, "final")
		require.NoError(t, err)
		require.Equal(t, "team-a", final.HomeTeamID)
		require.Equal(t, "team-b", final.AwayTeamID)
		require.Equal(t, match.StatusScheduled, final.Status)
	})

	t.Run("never touches completed final", func(t *testing.T) {
		two, one := 2, 1
		mutator, repo := newMemoryMutator(
			match.Match{ID: "final", ChampionshipID: "liga", Round: match.RoundFinal, HomeTeamID: "team-x", AwayTeamID: "team-y", HomeScore: &two, AwayScore: &one, Status: match.StatusCompleted},
		)

		changed, err := mutator.SeedFinal(ctx, "liga", "team-a", "team-b")
		require.NoError(t, err)
		require.False(t, changed)

		final, _, err := repo.GetByID(ctx, "final")
		require.NoError(t, err)
		require.Equal(t, "team-x", final.HomeTeamID)
		require.Equal(t, match.StatusCompleted, final.Status)
	})
}
