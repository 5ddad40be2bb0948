package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	championshipmock "github.com/riskibarqy/championship-progression/internal/mocks/domain/championship"
	matchmock "github.com/riskibarqy/championship-progression/internal/mocks/domain/match"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingTrigger struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingTrigger) AdvanceFromMatch(_ context.Context, matchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, matchID)
}

func intRef(v int) *int {
	return &v
}

func TestMatchService_UpdateResult_CompletedMatchTriggersProgression(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	trigger := &recordingTrigger{}
	service := NewMatchService(championshipRepo, matchRepo, trigger, logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "semi").
		Return(scheduled("semi", "Semifinal 1", "team-a", "team-b"), true, nil).Once()
	championshipRepo.On("GetByID", mock.Anything, "cup").
		Return(championship.Championship{ID: "cup", Type: championship.TypeKnockoutOnly, Status: championship.StatusLive}, true, nil).Once()
	matchRepo.On("UpdateResult", mock.Anything, "semi", mock.MatchedBy(func(update match.ResultUpdate) bool {
		return *update.HomeScore == 2 && *update.AwayScore == 1 &&
			update.Status == match.StatusCompleted &&
			len(update.Stats) == 1 && update.Stats[0].PlayerID == "p-9" && update.Stats[0].MatchID == "semi"
	})).Return(nil).Once()

	updated, err := service.UpdateResult(ctx, UpdateMatchResultInput{
		MatchID:   " semi ",
		HomeScore: intRef(2),
		AwayScore: intRef(1),
		Status:    "completed",
		Stats:     []PlayerStatInput{{PlayerID: " p-9 ", Goals: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, match.StatusCompleted, updated.Status)
	require.Equal(t, 2, *updated.HomeScore)
	require.Equal(t, []string{"semi"}, trigger.calls)
}

func TestMatchService_UpdateResult_LiveMatchDoesNotTriggerProgression(t *testing.T) {
	t.Parallel()

	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	trigger := &recordingTrigger{}
	service := NewMatchService(championshipRepo, matchRepo, trigger, logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "m1").
		Return(scheduled("m1", "Rodada 1", "team-a", "team-b"), true, nil).Once()
	championshipRepo.On("GetByID", mock.Anything, "cup").
		Return(championship.Championship{ID: "cup", Status: championship.StatusLive}, true, nil).Once()
	matchRepo.On("UpdateResult", mock.Anything, "m1", mock.MatchedBy(func(update match.ResultUpdate) bool {
		return update.Status == match.StatusLive && update.Stats == nil
	})).Return(nil).Once()

	_, err := service.UpdateResult(context.Background(), UpdateMatchResultInput{
		MatchID:   "m1",
		HomeScore: intRef(0),
		AwayScore: intRef(0),
		Status:    match.StatusLive,
	})
	require.NoError(t, err)
	require.Empty(t, trigger.calls)
}

func TestMatchService_UpdateResult_ValidatesInput(t *testing.T) {
	t.Parallel()

	service := NewMatchService(championshipmock.NewRepository(t), matchmock.NewRepository(t), nil, logging.NewNop())

	tests := []struct {
		name  string
		input UpdateMatchResultInput
	}{
		{name: "missing match id", input: UpdateMatchResultInput{Status: match.StatusLive}},
		{name: "unknown status", input: UpdateMatchResultInput{MatchID: "m1", Status: "POSTPONED"}},
		{name: "half a score", input: UpdateMatchResultInput{MatchID: "m1", HomeScore: intRef(1)}},
		{name: "half a shootout", input: UpdateMatchResultInput{MatchID: "m1", HomeScore: intRef(1), AwayScore: intRef(1), AwayShootoutScore: intRef(3)}},
		{name: "completed without score", input: UpdateMatchResultInput{MatchID: "m1", Status: match.StatusCompleted}},
		{name: "blank stat player", input: UpdateMatchResultInput{MatchID: "m1", Stats: []PlayerStatInput{{PlayerID: " "}}}},
		{name: "duplicate stat player", input: UpdateMatchResultInput{MatchID: "m1", Stats: []PlayerStatInput{{PlayerID: "p"}, {PlayerID: "p"}}}},
	}

	for _, tt := range tests {
		_, err := service.UpdateResult(context.Background(), tt.input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: error = %v, want ErrInvalidInput", tt.name, err)
		}
	}
}

func TestMatchService_UpdateResult_RejectsCompletedChampionship(t *testing.T) {
	t.Parallel()

	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(championshipRepo, matchRepo, nil, logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "m1").
		Return(scheduled("m1", "Rodada 1", "team-a", "team-b"), true, nil).Once()
	championshipRepo.On("GetByID", mock.Anything, "cup").
		Return(championship.Championship{ID: "cup", Status: championship.StatusCompleted}, true, nil).Once()

	_, err := service.UpdateResult(context.Background(), UpdateMatchResultInput{
		MatchID:   "m1",
		HomeScore: intRef(1),
		AwayScore: intRef(0),
		Status:    match.StatusCompleted,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestMatchService_UpdateResult_RejectsCompletingOpenFixture(t *testing.T) {
	t.Parallel()

	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(championshipRepo, matchRepo, nil, logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "final").
		Return(scheduled("final", match.RoundFinal, "team-a", ""), true, nil).Once()
	championshipRepo.On("GetByID", mock.Anything, "cup").
		Return(championship.Championship{ID: "cup", Status: championship.StatusLive}, true, nil).Once()

	_, err := service.UpdateResult(context.Background(), UpdateMatchResultInput{
		MatchID:   "final",
		HomeScore: intRef(1),
		AwayScore: intRef(0),
		Status:    match.StatusCompleted,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestMatchService_UpdateResult_UnknownPlayerIsInvalidInput(t *testing.T) {
	t.Parallel()

	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	trigger := &recordingTrigger{}
	service := NewMatchService(championshipRepo, matchRepo, trigger, logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "m1").
		Return(scheduled("m1", "Rodada 1", "team-a", "team-b"), true, nil).Once()
	championshipRepo.On("GetByID", mock.Anything, "cup").
		Return(championship.Championship{ID: "cup", Status: championship.StatusLive}, true, nil).Once()
	matchRepo.On("UpdateResult", mock.Anything, "m1", mock.Anything).
		Return(match.ErrUnknownPlayer).Once()

	_, err := service.UpdateResult(context.Background(), UpdateMatchResultInput{
		MatchID:   "m1",
		HomeScore: intRef(1),
		AwayScore: intRef(0),
		Status:    match.StatusCompleted,
		Stats:     []PlayerStatInput{{PlayerID: "ghost"}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, trigger.calls)
}

func TestMatchService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(championshipmock.NewRepository(t), matchRepo, nil, logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "missing").Return(match.Match{}, false, nil).Once()

	_, err := service.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
