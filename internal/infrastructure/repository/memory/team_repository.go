package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/championship-progression/internal/domain/team"
)

type TeamRepository struct {
	mu                  sync.RWMutex
	teamsByChampionship map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byChampionship := make(map[string][]team.Team)
	for _, item := range teams {
		if item.ChampionshipID == "" {
			continue
		}
		byChampionship[item.ChampionshipID] = append(byChampionship[item.ChampionshipID], item)
	}

	return &TeamRepository{teamsByChampionship: byChampionship}
}

func (r *TeamRepository) ListByChampionship(_ context.Context, championshipID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.teamsByChampionship[championshipID]
	out := make([]team.Team, 0, len(items))
	out = append(out, items...)
	return out, nil
}
