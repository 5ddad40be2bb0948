package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/championship-progression/internal/domain/match"
	idgen "github.com/riskibarqy/championship-progression/internal/platform/id"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
)

// BracketMutator is the only writer of fixtures created or filled by
// progression. Every method is safe to call again with the same arguments.
type BracketMutator struct {
	matchRepo match.Repository
	idGen     idgen.Generator
	logger    *logging.Logger
}

func NewBracketMutator(matchRepo match.Repository, idGen idgen.Generator, logger *logging.Logger) *BracketMutator {
	if logger == nil {
		logger = logging.Default()
	}

	return &BracketMutator{
		matchRepo: matchRepo,
		idGen:     idGen,
		logger:    logger,
	}
}

// AdvanceWinner places winnerTeamID in round: into the first open slot of an
// existing fixture, or as home team of a new fixture when the round is empty.
// It reports whether anything was written.
func (m *BracketMutator) AdvanceWinner(ctx context.Context, championshipID, round, winnerTeamID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketMutator.AdvanceWinner", championshipAttr(championshipID))
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	winnerTeamID = strings.TrimSpace(winnerTeamID)
	if championshipID == "" || round == "" || winnerTeamID == "" {
		return false, fmt.Errorf("%w: championship id, round and winner are required", ErrInvalidInput)
	}

	fixtures, err := m.matchRepo.ListByRound(ctx, championshipID, round)
	if err != nil {
		return false, fmt.Errorf("list fixtures of round %q: %w", round, err)
	}

	for _, item := range fixtures {
		if item.HasTeam(winnerTeamID) {
			return false, nil
		}
	}
	for _, item := range fixtures {
		if item.HasOpenSlot() {
			if err := m.fillOpenSlot(ctx, item, winnerTeamID); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	if len(fixtures) > 0 {
		m.logger.WarnContext(ctx, "round has no open slot for winner",
			"championship_id", championshipID,
			"round", round,
			"team_id", winnerTeamID,
		)
		return false, nil
	}

	created, err := m.create(ctx, match.Match{
		ChampionshipID: championshipID,
		Round:          round,
		HomeTeamID:     winnerTeamID,
		Status:         match.StatusScheduled,
	})
	if errors.Is(err, match.ErrRoundAlreadyExists) {
		return m.fillAfterConflict(ctx, championshipID, round, winnerTeamID)
	}
	if err != nil {
		return false, err
	}

	m.logger.InfoContext(ctx, "fixture created for winner",
		"championship_id", championshipID,
		"match_id", created.ID,
		"round", round,
		"team_id", winnerTeamID,
	)
	return true, nil
}

// SeedFinal makes first and second the home and away teams of the Final. A
// completed Final is never modified.
func (m *BracketMutator) SeedFinal(ctx context.Context, championshipID, first, second string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketMutator.SeedFinal", championshipAttr(championshipID))
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)
	if championshipID == "" || first == "" || second == "" {
		return false, fmt.Errorf("%w: championship id and both finalists are required", ErrInvalidInput)
	}

	final, exists, err := m.matchRepo.FindByRound(ctx, championshipID, match.RoundFinal, false)
	if err != nil {
		return false, fmt.Errorf("find final: %w", err)
	}

	if !exists {
		created, err := m.create(ctx, match.Match{
			ChampionshipID: championshipID,
			Round:          match.RoundFinal,
			HomeTeamID:     first,
			AwayTeamID:     second,
			Status:         match.StatusScheduled,
		})
		switch {
		case errors.Is(err, match.ErrRoundAlreadyExists):
			final, exists, err = m.matchRepo.FindByRound(ctx, championshipID, match.RoundFinal, false)
			if err != nil {
				return false, fmt.Errorf("find final after conflict: %w", err)
			}
			if !exists {
				return false, fmt.Errorf("final reported as existing but not found: %w", match.ErrRoundAlreadyExists)
			}
		case err != nil:
			return false, err
		default:
			m.logger.InfoContext(ctx, "final created",
				"championship_id", championshipID,
				"match_id", created.ID,
				"home_team_id", first,
				"away_team_id", second,
			)
			return true, nil
		}
	}

	if final.IsCompleted() {
		return false, nil
	}
	if final.HomeTeamID == first && final.AwayTeamID == second && match.NormalizeStatus(final.Status) == match.StatusScheduled {
		return false, nil
	}

	status := match.StatusScheduled
	if err := m.matchRepo.UpdateSlots(ctx, final.ID, match.SlotUpdate{
		HomeTeamID: &first,
		AwayTeamID: &second,
		Status:     &status,
	}); err != nil {
		return false, fmt.Errorf("update final slots: %w", err)
	}

	m.logger.InfoContext(ctx, "final reseeded",
		"championship_id", championshipID,
		"match_id", final.ID,
		"home_team_id", first,
		"away_team_id", second,
	)
	return true, nil
}

func (m *BracketMutator) create(ctx context.Context, item match.Match) (match.Match, error) {
	id, err := m.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	item.ID = id

	created, err := m.matchRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, match.ErrRoundAlreadyExists) {
			return match.Match{}, err
		}
		return match.Match{}, fmt.Errorf("create fixture for round %q: %w", item.Round, err)
	}
	return created, nil
}

func (m *BracketMutator) fillAfterConflict(ctx context.Context, championshipID, round, winnerTeamID string) (bool, error) {
	open, exists, err := m.matchRepo.FindByRound(ctx, championshipID, round, true)
	if err != nil {
		return false, fmt.Errorf("find open fixture after conflict: %w", err)
	}
	if !exists || open.HasTeam(winnerTeamID) {
		return false, nil
	}
	if err := m.fillOpenSlot(ctx, open, winnerTeamID); err != nil {
		return false, err
	}
	return true, nil
}

func (m *BracketMutator) fillOpenSlot(ctx context.Context, item match.Match, teamID string) error {
	update := match.SlotUpdate{}
	side := "home"
	if strings.TrimSpace(item.HomeTeamID) == "" {
		update.HomeTeamID = &teamID
	} else {
		update.AwayTeamID = &teamID
		side = "away"
	}

	if err := m.matchRepo.UpdateSlots(ctx, item.ID, update); err != nil {
		return fmt.Errorf("fill %s slot of match %s: %w", side, item.ID, err)
	}

	m.logger.InfoContext(ctx, "winner placed in open slot",
		"championship_id", item.ChampionshipID,
		"match_id", item.ID,
		"round", item.Round,
		"side", side,
		"team_id", teamID,
	)
	return nil
}
