package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/knockout"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/domain/progression"
	"github.com/riskibarqy/championship-progression/internal/domain/standing"
	idgen "github.com/riskibarqy/championship-progression/internal/platform/id"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

// ProgressionOutcome tells what one progression run did.
type ProgressionOutcome string

const (
	// ProgressionSkipped means the match does not drive progression.
	ProgressionSkipped ProgressionOutcome = "skipped"
	// ProgressionPending means progression waits for more results.
	ProgressionPending ProgressionOutcome = "pending"
	// ProgressionAdvanced means the bracket or the Final was written.
	ProgressionAdvanced ProgressionOutcome = "advanced"
	// ProgressionUnchanged means the advancement was already in place.
	ProgressionUnchanged ProgressionOutcome = "unchanged"
	// ProgressionFailed means a store error or panic stopped the run.
	ProgressionFailed ProgressionOutcome = "failed"
)

// ProgressionResult reports one run. ChampionshipCompleted is set only by
// the run that moved the championship to COMPLETED.
type ProgressionResult struct {
	MatchID               string             `json:"match_id"`
	ChampionshipID        string             `json:"championship_id,omitempty"`
	Outcome               ProgressionOutcome `json:"outcome"`
	ChampionshipCompleted bool               `json:"championship_completed"`
	Message               string             `json:"message,omitempty"`
}

type progressionStrategy func(ctx context.Context, mutator *BracketMutator, repos progression.Repositories, item match.Match) (ProgressionOutcome, string, error)

// ProgressionService advances a championship after one of its matches
// completes.
type ProgressionService struct {
	matchRepo  match.Repository
	store      progression.Store
	idGen      idgen.Generator
	logger     *logging.Logger
	strategies map[championship.Type]progressionStrategy
}

func NewProgressionService(
	matchRepo match.Repository,
	store progression.Store,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ProgressionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ProgressionService{
		matchRepo: matchRepo,
		store:     store,
		idGen:     idGen,
		logger:    logger,
		strategies: map[championship.Type]progressionStrategy{
			championship.TypeKnockoutOnly:        advanceKnockout,
			championship.TypeRoundRobinWithFinal: advanceRoundRobin,
		},
	}
}

// AdvanceFromMatch runs progression for a completed match. Failures, panics
// included, are logged and never reach the caller.
func (s *ProgressionService) AdvanceFromMatch(ctx context.Context, matchID string) {
	_ = s.Run(ctx, matchID)
}

// Run is AdvanceFromMatch reporting what happened.
func (s *ProgressionService) Run(ctx context.Context, matchID string) ProgressionResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressionService.Run", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	result := ProgressionResult{MatchID: matchID, Outcome: ProgressionSkipped}

	var catcher panics.Catcher
	catcher.Try(func() {
		out, err := s.advance(ctx, matchID)
		result = out
		if err != nil {
			result.Outcome = ProgressionFailed
			result.Message = err.Error()
			s.logger.ErrorContext(ctx, "progression failed",
				"match_id", matchID,
				"championship_id", out.ChampionshipID,
				"error", err,
			)
		}
	})
	if recovered := catcher.Recovered(); recovered != nil {
		result.Outcome = ProgressionFailed
		result.Message = fmt.Sprintf("panic: %v", recovered.Value)
		s.logger.ErrorContext(ctx, "progression panicked",
			"match_id", matchID,
			"panic", recovered.Value,
			"stack", string(recovered.Stack),
		)
	}

	return result
}

func (s *ProgressionService) advance(ctx context.Context, matchID string) (ProgressionResult, error) {
	result := ProgressionResult{MatchID: matchID, Outcome: ProgressionSkipped}
	if matchID == "" {
		return result, nil
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return result, fmt.Errorf("get match: %w", err)
	}
	if !exists || strings.TrimSpace(item.ChampionshipID) == "" || !item.IsCompleted() {
		return result, nil
	}
	result.ChampionshipID = item.ChampionshipID

	err = s.store.WithinChampionship(ctx, item.ChampionshipID, func(ctx context.Context, repos progression.Repositories) error {
		current, exists, err := repos.Matches.GetByID(ctx, matchID)
		if err != nil {
			return fmt.Errorf("reload match: %w", err)
		}
		if !exists || current.ChampionshipID != item.ChampionshipID || !current.IsCompleted() {
			return nil
		}

		owner, exists, err := repos.Championships.GetByID(ctx, current.ChampionshipID)
		if err != nil {
			return fmt.Errorf("get championship: %w", err)
		}
		if !exists {
			return nil
		}

		if strategy, ok := s.strategies[owner.Type]; ok {
			mutator := NewBracketMutator(repos.Matches, s.idGen, s.logger)
			outcome, message, err := strategy(ctx, mutator, repos, current)
			if err != nil {
				return err
			}
			result.Outcome = outcome
			result.Message = message
		} else {
			result.Message = fmt.Sprintf("championship type %q has no progression", owner.Type)
		}

		if match.IsFinalRound(current.Round) && !owner.IsCompleted() {
			if err := repos.Championships.UpdateStatus(ctx, owner.ID, championship.StatusCompleted); err != nil {
				return fmt.Errorf("complete championship: %w", err)
			}
			result.ChampionshipCompleted = true
			s.logger.InfoContext(ctx, "championship completed",
				"championship_id", owner.ID,
				"match_id", current.ID,
			)
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	return result, nil
}

func advanceKnockout(ctx context.Context, mutator *BracketMutator, _ progression.Repositories, item match.Match) (ProgressionOutcome, string, error) {
	winnerTeamID, decided := knockout.Advance(item)
	if !decided {
		return ProgressionPending, "match has no winner", nil
	}
	nextRound, ok := knockout.NextRound(item.Round)
	if !ok {
		return ProgressionSkipped, fmt.Sprintf("round %q has no next round", item.Round), nil
	}

	changed, err := mutator.AdvanceWinner(ctx, item.ChampionshipID, nextRound, winnerTeamID)
	if err != nil {
		return ProgressionFailed, "", fmt.Errorf("advance winner: %w", err)
	}
	if !changed {
		return ProgressionUnchanged, "", nil
	}
	return ProgressionAdvanced, fmt.Sprintf("%s advanced to %s", winnerTeamID, nextRound), nil
}

func advanceRoundRobin(ctx context.Context, mutator *BracketMutator, repos progression.Repositories, item match.Match) (ProgressionOutcome, string, error) {
	open, err := repos.Matches.Count(ctx, item.ChampionshipID, match.Filter{
		RoundPrefix:   match.RoundRobinPrefix,
		ExcludeStatus: match.StatusCompleted,
	})
	if err != nil {
		return ProgressionFailed, "", fmt.Errorf("count open round-robin fixtures: %w", err)
	}
	if open > 0 {
		return ProgressionPending, fmt.Sprintf("%d round-robin fixtures still open", open), nil
	}

	results, err := repos.Matches.ListResults(ctx, item.ChampionshipID, match.RoundRobinPrefix)
	if err != nil {
		return ProgressionFailed, "", fmt.Errorf("list round-robin results: %w", err)
	}
	entries := standing.Calculate(results)
	if len(entries) < 2 {
		return ProgressionPending, "fewer than two ranked teams", nil
	}

	changed, err := mutator.SeedFinal(ctx, item.ChampionshipID, entries[0].TeamID, entries[1].TeamID)
	if err != nil {
		return ProgressionFailed, "", fmt.Errorf("seed final: %w", err)
	}
	if !changed {
		return ProgressionUnchanged, "", nil
	}
	return ProgressionAdvanced, fmt.Sprintf("final seeded with %s and %s", entries[0].TeamID, entries[1].TeamID), nil
}
