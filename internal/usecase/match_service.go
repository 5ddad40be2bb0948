package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
)

type progressionTrigger interface {
	AdvanceFromMatch(ctx context.Context, matchID string)
}

// UpdateMatchResultInput is a score report. Stats, when given, replace the
// match's player stats.
type UpdateMatchResultInput struct {
	MatchID           string
	HomeScore         *int
	AwayScore         *int
	HomeShootoutScore *int
	AwayShootoutScore *int
	Status            string
	Stats             []PlayerStatInput
}

type PlayerStatInput struct {
	PlayerID    string
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

type MatchService struct {
	championshipRepo championship.Repository
	matchRepo        match.Repository
	progression      progressionTrigger
	logger           *logging.Logger
}

func NewMatchService(
	championshipRepo championship.Repository,
	matchRepo match.Repository,
	progression progressionTrigger,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
		progression:      progression,
		logger:           logger,
	}
}

func (s *MatchService) GetByID(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID", matchAttr(matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// UpdateResult stores the result first and then runs progression for a
// completed match. Progression failures never fail the update.
func (s *MatchService) UpdateResult(ctx context.Context, input UpdateMatchResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateResult", matchAttr(input.MatchID))
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.Status = match.NormalizeStatus(input.Status)
	if err := validateMatchResultInput(input); err != nil {
		return match.Match{}, err
	}

	item, err := s.GetByID(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	owner, exists, err := s.championshipRepo.GetByID(ctx, item.ChampionshipID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: championship=%s", ErrNotFound, item.ChampionshipID)
	}
	if owner.IsCompleted() {
		return match.Match{}, fmt.Errorf("%w: championship %s is completed", ErrConflict, owner.ID)
	}
	if input.Status == match.StatusCompleted && item.HasOpenSlot() {
		return match.Match{}, fmt.Errorf("%w: match %s still has an open slot", ErrConflict, item.ID)
	}

	update := match.ResultUpdate{
		HomeScore:         input.HomeScore,
		AwayScore:         input.AwayScore,
		HomeShootoutScore: input.HomeShootoutScore,
		AwayShootoutScore: input.AwayShootoutScore,
		Status:            input.Status,
	}
	if input.Stats != nil {
		update.Stats = make([]match.PlayerStat, 0, len(input.Stats))
		for _, stat := range input.Stats {
			update.Stats = append(update.Stats, match.PlayerStat{
				MatchID:     item.ID,
				PlayerID:    strings.TrimSpace(stat.PlayerID),
				Goals:       stat.Goals,
				Assists:     stat.Assists,
				YellowCards: stat.YellowCards,
				RedCards:    stat.RedCards,
			})
		}
	}

	if err := s.matchRepo.UpdateResult(ctx, item.ID, update); err != nil {
		if errors.Is(err, match.ErrUnknownPlayer) {
			return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return match.Match{}, fmt.Errorf("update match result: %w", err)
	}
	updated := update.Apply(item)

	s.logger.InfoContext(ctx, "match result stored",
		"match_id", updated.ID,
		"championship_id", updated.ChampionshipID,
		"round", updated.Round,
		"status", updated.Status,
	)

	if updated.IsCompleted() && s.progression != nil {
		s.progression.AdvanceFromMatch(ctx, updated.ID)
	}

	return updated, nil
}

func validateMatchResultInput(input UpdateMatchResultInput) error {
	if input.MatchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if !match.IsKnownStatus(input.Status) {
		return fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, input.Status)
	}
	if (input.HomeScore == nil) != (input.AwayScore == nil) {
		return fmt.Errorf("%w: home and away score must be given together", ErrInvalidInput)
	}
	if (input.HomeShootoutScore == nil) != (input.AwayShootoutScore == nil) {
		return fmt.Errorf("%w: home and away shootout score must be given together", ErrInvalidInput)
	}
	if input.Status == match.StatusCompleted && input.HomeScore == nil {
		return fmt.Errorf("%w: a completed match needs a score", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(input.Stats))
	for _, stat := range input.Stats {
		playerID := strings.TrimSpace(stat.PlayerID)
		if playerID == "" {
			return fmt.Errorf("%w: stat player id is required", ErrInvalidInput)
		}
		if _, ok := seen[playerID]; ok {
			return fmt.Errorf("%w: duplicate stat for player %s", ErrInvalidInput, playerID)
		}
		seen[playerID] = struct{}{}
	}

	return nil
}
