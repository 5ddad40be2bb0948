package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/championship-progression/internal/domain/match"
)

type MatchRepository struct {
	mu          sync.RWMutex
	byID        map[string]match.Match
	order       []string
	stats       map[string][]match.PlayerStat
	playerTeams map[string]string
	now         func() time.Time
}

// NewMatchRepository keeps matches in insertion order. playerTeams maps a
// player id to the team the player belongs to.
func NewMatchRepository(matches []match.Match, playerTeams map[string]string) *MatchRepository {
	repo := &MatchRepository{
		byID:        make(map[string]match.Match, len(matches)),
		stats:       make(map[string][]match.PlayerStat),
		playerTeams: make(map[string]string, len(playerTeams)),
		now:         time.Now,
	}
	for playerID, teamID := range playerTeams {
		repo.playerTeams[playerID] = teamID
	}
	for _, item := range matches {
		if _, ok := repo.byID[item.ID]; !ok {
			repo.order = append(repo.order, item.ID)
		}
		item.Status = match.NormalizeStatus(item.Status)
		repo.byID[item.ID] = cloneMatch(item)
	}
	return repo
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(item), true, nil
}

func (r *MatchRepository) ListByChampionship(_ context.Context, championshipID string) ([]match.Match, error) {
	return r.collect(func(item match.Match) bool {
		return item.ChampionshipID == championshipID
	}), nil
}

func (r *MatchRepository) ListByRound(_ context.Context, championshipID, round string) ([]match.Match, error) {
	return r.collect(func(item match.Match) bool {
		return item.ChampionshipID == championshipID && item.Round == round
	}), nil
}

func (r *MatchRepository) Count(_ context.Context, championshipID string, filter match.Filter) (int, error) {
	return len(r.collect(func(item match.Match) bool {
		return item.ChampionshipID == championshipID && filter.Matches(item)
	})), nil
}

func (r *MatchRepository) ListResults(_ context.Context, championshipID, roundPrefix string) ([]match.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Result, 0)
	for _, id := range r.order {
		item := r.byID[id]
		if item.ChampionshipID != championshipID || !item.IsCompleted() || !strings.HasPrefix(item.Round, roundPrefix) {
			continue
		}

		stats := make([]match.PlayerStat, 0, len(r.stats[id]))
		for _, stat := range r.stats[id] {
			stat.TeamID = r.playerTeams[stat.PlayerID]
			stats = append(stats, stat)
		}
		out = append(out, match.Result{Match: cloneMatch(item), Stats: stats})
	}
	return out, nil
}

func (r *MatchRepository) FindByRound(_ context.Context, championshipID, round string, openSlotOnly bool) (match.Match, bool, error) {
	items := r.collect(func(item match.Match) bool {
		if item.ChampionshipID != championshipID || item.Round != round {
			return false
		}
		return !openSlotOnly || item.HasOpenSlot()
	})
	if len(items) == 0 {
		return match.Match{}, false, nil
	}
	return items[0], true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(item.ID) == "" {
		return match.Match{}, fmt.Errorf("match id is required")
	}
	if _, ok := r.byID[item.ID]; ok {
		return match.Match{}, fmt.Errorf("match %s already exists", item.ID)
	}
	if match.IsFinalRound(item.Round) {
		for _, id := range r.order {
			existing := r.byID[id]
			if existing.ChampionshipID == item.ChampionshipID && match.IsFinalRound(existing.Round) {
				return match.Match{}, match.ErrRoundAlreadyExists
			}
		}
	}

	now := r.now().UTC()
	item.Status = match.NormalizeStatus(item.Status)
	item.CreatedAt = now
	item.UpdatedAt = now
	r.byID[item.ID] = cloneMatch(item)
	r.order = append(r.order, item.ID)
	return cloneMatch(item), nil
}

func (r *MatchRepository) UpdateSlots(_ context.Context, matchID string, update match.SlotUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	item = update.Apply(item)
	item.UpdatedAt = r.now().UTC()
	r.byID[matchID] = item
	return nil
}

func (r *MatchRepository) UpdateResult(_ context.Context, matchID string, update match.ResultUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	if update.Stats != nil {
		for _, stat := range update.Stats {
			if _, known := r.playerTeams[stat.PlayerID]; !known {
				return fmt.Errorf("player %s: %w", stat.PlayerID, match.ErrUnknownPlayer)
			}
		}
		stats := make([]match.PlayerStat, 0, len(update.Stats))
		for _, stat := range update.Stats {
			stat.MatchID = matchID
			stat.TeamID = ""
			stats = append(stats, stat)
		}
		r.stats[matchID] = stats
	}

	item = cloneMatch(update.Apply(item))
	item.UpdatedAt = r.now().UTC()
	r.byID[matchID] = item
	return nil
}

func (r *MatchRepository) collect(keep func(match.Match) bool) []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, id := range r.order {
		item := r.byID[id]
		if keep(item) {
			out = append(out, cloneMatch(item))
		}
	}
	return out
}

func cloneMatch(item match.Match) match.Match {
	item.HomeScore = cloneInt(item.HomeScore)
	item.AwayScore = cloneInt(item.AwayScore)
	item.HomeShootoutScore = cloneInt(item.HomeShootoutScore)
	item.AwayShootoutScore = cloneInt(item.AwayShootoutScore)
	return item
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
