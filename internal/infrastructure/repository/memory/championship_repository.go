package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
)

type ChampionshipRepository struct {
	mu    sync.RWMutex
	byID  map[string]championship.Championship
	order []string
	now   func() time.Time
}

func NewChampionshipRepository(items []championship.Championship) *ChampionshipRepository {
	repo := &ChampionshipRepository{
		byID: make(map[string]championship.Championship, len(items)),
		now:  time.Now,
	}
	for _, item := range items {
		if _, ok := repo.byID[item.ID]; !ok {
			repo.order = append(repo.order, item.ID)
		}
		item.Status = championship.NormalizeStatus(item.Status)
		repo.byID[item.ID] = item
	}
	return repo
}

func (r *ChampionshipRepository) GetByID(_ context.Context, championshipID string) (championship.Championship, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[championshipID]
	return item, ok, nil
}

func (r *ChampionshipRepository) List(_ context.Context) ([]championship.Championship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]championship.Championship, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *ChampionshipRepository) UpdateStatus(_ context.Context, championshipID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[championshipID]
	if !ok || item.IsCompleted() {
		return nil
	}
	item.Status = championship.NormalizeStatus(status)
	item.UpdatedAt = r.now().UTC()
	r.byID[championshipID] = item
	return nil
}
