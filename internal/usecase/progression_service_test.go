package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/domain/progression"
	"github.com/riskibarqy/championship-progression/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/championship-progression/internal/mocks/domain/match"
	progressionmock "github.com/riskibarqy/championship-progression/internal/mocks/domain/progression"
	idgen "github.com/riskibarqy/championship-progression/internal/platform/id"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressionFixture struct {
	service       *ProgressionService
	championships *memory.ChampionshipRepository
	matches       *memory.MatchRepository
}

func newProgressionFixture(t *testing.T, kind championship.Type, matches ...match.Match) progressionFixture {
	t.Helper()

	championships := memory.NewChampionshipRepository([]championship.Championship{
		{ID: "cup", Name: "Cup", Type: kind, Status: championship.StatusLive},
	})
	matchRepo := memory.NewMatchRepository(matches, nil)
	store := memory.NewProgressionStore(championships, matchRepo)

	return progressionFixture{
		service:       NewProgressionService(matchRepo, store, idgen.NewSequenceGenerator("gen"), logging.NewNop()),
		championships: championships,
		matches:       matchRepo,
	}
}

func scheduled(id, round, home, away string) match.Match {
	return match.Match{ID: id, ChampionshipID: "cup", Round: round, HomeTeamID: home, AwayTeamID: away, Status: match.StatusScheduled}
}

func played(id, round, home, away string, homeScore, awayScore int) match.Match {
	item := scheduled(id, round, home, away)
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.Status = match.StatusCompleted
	return item
}

func (f progressionFixture) finals(t *testing.T) []match.Match {
	t.Helper()

	items, err := f.matches.ListByRound(context.Background(), "cup", match.RoundFinal)
	require.NoError(t, err)
	return items
}

func TestProgressionService_KnockoutWinnerMovesToFinal(t *testing.T) {
	t.Parallel()

	f := newProgressionFixture(t, championship.TypeKnockoutOnly,
		played("r1", match.RoundFirst, "team-a", "team-b", 3, 1),
	)

	result := f.service.Run(context.Background(), "r1")
	require.Equal(t, ProgressionAdvanced, result.Outcome)
	require.Equal(t, "cup", result.ChampionshipID)
	require.False(t, result.ChampionshipCompleted)

	finals := f.finals(t)
	require.Len(t, finals, 1)
	require.Equal(t, "team-a", finals[0].HomeTeamID)
	require.Empty(t, finals[0].AwayTeamID)
	require.Equal(t, match.StatusScheduled, finals[0].Status)
}

func TestProgressionService_UndecidedKnockoutWritesNothing(t *testing.T) {
	t.Parallel()

	f := newProgressionFixture(t, championship.TypeKnockoutOnly,
		played("semi", "Semifinal 1", "team-a", "team-b", 2, 2),
	)

	result := f.service.Run(context.Background(), "semi")
	require.Equal(t, ProgressionPending, result.Outcome)
	require.Empty(t, f.finals(t))
}

func TestProgressionService_ShootoutDecidesKnockout(t *testing.T) {
	t.Parallel()

	semi := played("semi", "Semifinal 1", "team-a", "team-b", 1, 1)
	four, five := 4, 5
	semi.HomeShootoutScore = &four
	semi.AwayShootoutScore = &five

	f := newProgressionFixture(t, championship.TypeKnockoutOnly, semi)

	result := f.service.Run(context.Background(), "semi")
	require.Equal(t, ProgressionAdvanced, result.Outcome)

	finals := f.finals(t)
	require.Len(t, finals, 1)
	require.Equal(t, "team-b", finals[0].HomeTeamID)
}

func TestProgressionService_SkipsMatchesThatDoNotDriveProgression(t *testing.T) {
	t.Parallel()

	f := newProgressionFixture(t, championship.TypeKnockoutOnly,
		scheduled("semi", "Semifinal 1", "team-a", "team-b"),
		played("quarter", "Quarterfinal 1", "team-c", "team-d", 1, 0),
	)

	tests := []struct {
		name    string
		matchID string
	}{
		{name: "unknown match", matchID: "missing"},
		{name: "blank id", matchID: " "},
		{name: "not completed", matchID: "semi"},
		{name: "round without successor", matchID: "quarter"},
	}

	for _, tt := range tests {
		result := f.service.Run(context.Background(), tt.matchID)
		if result.Outcome != ProgressionSkipped {
			t.Fatalf("%s: outcome = %q, want %q", tt.name, result.Outcome, ProgressionSkipped)
		}
	}
	require.Empty(t, f.finals(t))
}

func TestProgressionService_RoundRobinWaitsForOpenFixtures(t *testing.T) {
	t.Parallel()

	f := newProgressionFixture(t, championship.TypeRoundRobinWithFinal,
		played("m1", "Rodada 1", "team-a", "team-b", 2, 0),
		played("m2", "Rodada 1", "team-c", "team-d", 1, 1),
		played("m3", "Rodada 2", "team-a", "team-c", 1, 0),
		scheduled("m4", "Rodada 2", "team-b", "team-d"),
	)

	result := f.service.Run(context.Background(), "m3")
	require.Equal(t, ProgressionPending, result.Outcome)
	require.Empty(t, f.finals(t))
}

func TestProgressionService_RoundRobinSeedsFinalFromStandings(t *testing.T) {
	t.Parallel()

	f := newProgressionFixture(t, championship.TypeRoundRobinWithFinal,
		played("m1", "Rodada 1", "team-a", "team-b", 2, 0),
		played("m2", "Rodada 1", "team-c", "team-d", 1, 1),
		played("m3", "Rodada 2", "team-a", "team-c", 1, 0),
		played("m4", "Rodada 2", "team-b", "team-d", 3, 0),
		played("m5", "Rodada 3", "team-a", "team-d", 2, 0),
		played("m6", "Rodada 3", "team-b", "team-c", 1, 0),
	)

	result := f.service.Run(context.Background(), "m6")
	require.Equal(t, ProgressionAdvanced, result.Outcome)

	finals := f.finals(t)
	require.Len(t, finals, 1)
	require.Equal(t, "team-a", finals[0].HomeTeamID)
	require.Equal(t, "team-b", finals[0].AwayTeamID)
	require.Equal(t, match.StatusScheduled, finals[0].Status)

	again := f.service.Run(context.Background(), "m5")
	require.Equal(t, ProgressionUnchanged, again.Outcome)
	require.Len(t, f.finals(t), 1)
}

func TestProgressionService_CompletedFinalCompletesChampionshipOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newProgressionFixture(t, championship.TypeKnockoutOnly,
		played("final", match.RoundFinal, "team-a", "team-b", 1, 0),
	)

	first := f.service.Run(ctx, "final")
	require.True(t, first.ChampionshipCompleted)

	owner, ok, err := f.championships.GetByID(ctx, "cup")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, championship.StatusCompleted, owner.Status)

	second := f.service.Run(ctx, "final")
	require.False(t, second.ChampionshipCompleted)
	require.Len(t, f.finals(t), 1)
}

func TestProgressionService_RerunIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newProgressionFixture(t, championship.TypeKnockoutOnly,
		played("semi-1", "Semifinal 1", "team-a", "team-b", 2, 0),
	)

	require.Equal(t, ProgressionAdvanced, f.service.Run(context.Background(), "semi-1").Outcome)
	require.Equal(t, ProgressionUnchanged, f.service.Run(context.Background(), "semi-1").Outcome)

	finals := f.finals(t)
	require.Len(t, finals, 1)
	require.Equal(t, "team-a", finals[0].HomeTeamID)
	require.Empty(t, finals[0].AwayTeamID)
}

func TestProgressionService_ConcurrentSemifinalsShareOneFinal(t *testing.T) {
	t.Parallel()

	f := newProgressionFixture(t, championship.TypeKnockoutOnly,
		played("semi-1", "Semifinal 1", "team-a", "team-b", 2, 0),
		played("semi-2", "Semifinal 2", "team-c", "team-d", 0, 1),
	)

	var wg sync.WaitGroup
	for _, matchID := range []string{"semi-1", "semi-2", "semi-1", "semi-2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			f.service.AdvanceFromMatch(context.Background(), id)
		}(matchID)
	}
	wg.Wait()

	finals := f.finals(t)
	require.Len(t, finals, 1)
	require.ElementsMatch(t, []string{"team-a", "team-d"}, []string{finals[0].HomeTeamID, finals[0].AwayTeamID})
}

func TestProgressionService_StoreFailureIsReported(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	store := progressionmock.NewStore(t)
	service := NewProgressionService(matchRepo, store, idgen.NewSequenceGenerator("gen"), logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "semi").
		Return(played("semi", "Semifinal 1", "team-a", "team-b", 1, 0), true, nil).Once()
	store.On("WithinChampionship", mock.Anything, "cup", mock.Anything).
		Return(errors.New("lock timeout")).Once()

	result := service.Run(ctx, "semi")
	require.Equal(t, ProgressionFailed, result.Outcome)
	require.Contains(t, result.Message, "lock timeout")
}

func TestProgressionService_PanicIsRecovered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	store := progressionmock.NewStore(t)
	service := NewProgressionService(matchRepo, store, idgen.NewSequenceGenerator("gen"), logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "semi").
		Return(played("semi", "Semifinal 1", "team-a", "team-b", 1, 0), true, nil).Once()
	store.On("WithinChampionship", mock.Anything, "cup", mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(2).(func(context.Context, progression.Repositories) error)
			_ = fn(ctx, progression.Repositories{})
		}).
		Return(nil).Once()

	require.NotPanics(t, func() {
		result := service.Run(ctx, "semi")
		require.Equal(t, ProgressionFailed, result.Outcome)
		require.Contains(t, result.Message, "panic")
	})
}
