package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
)

type ChampionshipService struct {
	championshipRepo championship.Repository
	matchRepo        match.Repository
}

func NewChampionshipService(championshipRepo championship.Repository, matchRepo match.Repository) *ChampionshipService {
	return &ChampionshipService{
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
	}
}

func (s *ChampionshipService) List(ctx context.Context) ([]championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.List")
	defer span.End()

	items, err := s.championshipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}
	return items, nil
}

func (s *ChampionshipService) GetByID(ctx context.Context, championshipID string) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.GetByID", championshipAttr(championshipID))
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return championship.Championship{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	item, exists, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
	}
	return item, nil
}

// ListMatches returns every fixture of a championship in creation order.
func (s *ChampionshipService) ListMatches(ctx context.Context, championshipID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.ListMatches", championshipAttr(championshipID))
	defer span.End()

	item, err := s.GetByID(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListByChampionship(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches by championship: %w", err)
	}
	return matches, nil
}
