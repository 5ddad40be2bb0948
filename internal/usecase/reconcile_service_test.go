package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/championship-progression/internal/platform/id"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func newReconcileFixture(t *testing.T) (*ReconcileService, *memory.MatchRepository) {
	t.Helper()

	championships := memory.NewChampionshipRepository([]championship.Championship{
		{ID: "knock", Name: "Knockout", Type: championship.TypeKnockoutOnly, Status: championship.StatusLive},
		{ID: "liga", Name: "Liga", Type: championship.TypeRoundRobinWithFinal, Status: championship.StatusLive},
		{ID: "done", Name: "Done", Type: championship.TypeKnockoutOnly, Status: championship.StatusCompleted},
	})

	inChampionship := func(id string, item match.Match) match.Match {
		item.ChampionshipID = id
		return item
	}
	matches := memory.NewMatchRepository([]match.Match{
		inChampionship("knock", played("k-semi-1", "Semifinal 1", "team-a", "team-b", 1, 0)),
		inChampionship("knock", played("k-semi-2", "Semifinal 2", "team-c", "team-d", 0, 3)),
		inChampionship("liga", played("l-1", "Rodada 1", "team-e", "team-f", 2, 1)),
		inChampionship("liga", scheduled("l-2", "Rodada 2", "team-f", "team-e")),
		inChampionship("done", played("d-final", match.RoundFinal, "team-g", "team-h", 1, 0)),
	}, nil)

	progressionService := NewProgressionService(matches, memory.NewProgressionStore(championships, matches), idgen.NewSequenceGenerator("gen"), logging.NewNop())
	return NewReconcileService(championships, matches, progressionService, 2, logging.NewNop()), matches
}

func TestReconcileService_ReplaysOpenChampionships(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, matches := newReconcileFixture(t)

	result, err := service.Reconcile(ctx, ReconcileInput{})
	require.NoError(t, err)
	require.Equal(t, 2, result.ChampionshipCount)
	require.Equal(t, 2, result.SuccessCount)
	require.Zero(t, result.FailedCount)
	require.Equal(t, 2, result.WorkerCount)

	require.Len(t, result.Championships, 2)
	require.Equal(t, "knock", result.Championships[0].ChampionshipID)
	require.Equal(t, 2, result.Championships[0].Matches)
	require.Equal(t, 2, result.Championships[0].Advanced)
	require.Equal(t, "liga", result.Championships[1].ChampionshipID)
	require.Zero(t, result.Championships[1].Advanced)

	finals, err := matches.ListByRound(ctx, "knock", match.RoundFinal)
	require.NoError(t, err)
	require.Len(t, finals, 1)
	require.Equal(t, "team-a", finals[0].HomeTeamID)
	require.Equal(t, "team-d", finals[0].AwayTeamID)

	again, err := service.Reconcile(ctx, ReconcileInput{ChampionshipIDs: []string{"knock"}})
	require.NoError(t, err)
	require.Zero(t, again.Championships[0].Advanced)
}

func TestReconcileService_ExplicitTargets(t *testing.T) {
	t.Parallel()

	service, _ := newReconcileFixture(t)

	result, err := service.Reconcile(context.Background(), ReconcileInput{
		ChampionshipIDs: []string{"done", " done ", "missing"},
		MaxWorkers:      8,
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.ChampionshipCount)
	require.Equal(t, 2, result.SkippedCount)
	require.Equal(t, 2, result.WorkerCount)

	require.Equal(t, "done", result.Championships[0].ChampionshipID)
	require.True(t, result.Championships[0].Completed)
	require.Equal(t, "missing", result.Championships[1].ChampionshipID)
}

func TestReconcileService_BlankTargetsAreInvalid(t *testing.T) {
	t.Parallel()

	service, _ := newReconcileFixture(t)

	_, err := service.Reconcile(context.Background(), ReconcileInput{ChampionshipIDs: []string{" ", ""}})
	require.ErrorIs(t, err, ErrInvalidInput)
}

type slowRunner struct {
	delay time.Duration
	calls atomic.Int32
}

func (r *slowRunner) Run(_ context.Context, matchID string) ProgressionResult {
	r.calls.Add(1)
	time.Sleep(r.delay)
	return ProgressionResult{MatchID: matchID, Outcome: ProgressionUnchanged}
}

func TestReconcileService_ReportsDuration(t *testing.T) {
	t.Parallel()

	championships := memory.NewChampionshipRepository([]championship.Championship{
		{ID: "knock", Name: "Knockout", Type: championship.TypeKnockoutOnly, Status: championship.StatusLive},
	})
	semi := played("k-semi-1", "Semifinal 1", "team-a", "team-b", 1, 0)
	semi.ChampionshipID = "knock"
	matches := memory.NewMatchRepository([]match.Match{semi}, nil)

	runner := &slowRunner{delay: 20 * time.Millisecond}
	service := NewReconcileService(championships, matches, runner, 1, logging.NewNop())

	result, err := service.Reconcile(context.Background(), ReconcileInput{ChampionshipIDs: []string{"knock"}})
	require.NoError(t, err)
	require.Equal(t, int32(1), runner.calls.Load())
	require.Len(t, result.Championships, 1)
	require.GreaterOrEqual(t, result.Championships[0].DurationMs, int64(20))
}
