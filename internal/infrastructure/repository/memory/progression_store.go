package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/championship-progression/internal/domain/progression"
	"github.com/riskibarqy/championship-progression/internal/platform/resilience"
)

// ProgressionStore serializes progression per championship with a keyed
// mutex. Writes made before a failure are not rolled back.
type ProgressionStore struct {
	locks         resilience.KeyedMutex
	championships *ChampionshipRepository
	matches       *MatchRepository
}

func NewProgressionStore(championships *ChampionshipRepository, matches *MatchRepository) *ProgressionStore {
	return &ProgressionStore{
		championships: championships,
		matches:       matches,
	}
}

func (s *ProgressionStore) WithinChampionship(ctx context.Context, championshipID string, fn func(ctx context.Context, repos progression.Repositories) error) error {
	unlock, err := s.locks.Lock(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("lock championship %s: %w", championshipID, err)
	}
	defer unlock()

	return fn(ctx, progression.Repositories{
		Championships: s.championships,
		Matches:       s.matches,
	})
}
