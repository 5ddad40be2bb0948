package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/domain/standing"
	"github.com/riskibarqy/championship-progression/internal/domain/team"
)

// TeamStanding is a standings entry with the team's display names.
type TeamStanding struct {
	standing.Entry
	TeamName  string
	TeamShort string
}

type StandingService struct {
	championships *ChampionshipService
	matchRepo     match.Repository
	teamRepo      team.Repository
}

func NewStandingService(championshipRepo championship.Repository, matchRepo match.Repository, teamRepo team.Repository) *StandingService {
	return &StandingService{
		championships: NewChampionshipService(championshipRepo, matchRepo),
		matchRepo:     matchRepo,
		teamRepo:      teamRepo,
	}
}

// ListByChampionship recomputes round-robin standings from completed matches.
func (s *StandingService) ListByChampionship(ctx context.Context, championshipID string) ([]TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByChampionship", championshipAttr(championshipID))
	defer span.End()

	item, err := s.championships.GetByID(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	results, err := s.matchRepo.ListResults(ctx, item.ID, match.RoundRobinPrefix)
	if err != nil {
		return nil, fmt.Errorf("list round-robin results: %w", err)
	}
	entries := standing.Calculate(results)

	teams, err := s.teamRepo.ListByChampionship(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by championship: %w", err)
	}
	byID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	out := make([]TeamStanding, 0, len(entries))
	for _, entry := range entries {
		row := TeamStanding{Entry: entry}
		if t, ok := byID[entry.TeamID]; ok {
			row.TeamName = t.Name
			row.TeamShort = t.Short
		}
		out = append(out, row)
	}
	return out, nil
}
