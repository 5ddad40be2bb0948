package cache

import (
	"context"

	"github.com/riskibarqy/championship-progression/internal/domain/team"
	basecache "github.com/riskibarqy/championship-progression/internal/platform/cache"
)

const teamListKeyPrefix = "team:list:"

// TeamRepository caches team lists per championship. Entries are only dropped
// by TTL.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByChampionship(ctx context.Context, championshipID string) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKeyPrefix+championshipID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByChampionship(ctx, championshipID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}
