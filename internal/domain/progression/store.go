package progression

import (
	"context"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
)

// Repositories are the stores visible inside one serialized unit of work.
type Repositories struct {
	Championships championship.Repository
	Matches       match.Repository
}

// Store serializes progression per championship. Calls for the same
// championship never overlap; calls for different championships may.
type Store interface {
	WithinChampionship(ctx context.Context, championshipID string, fn func(ctx context.Context, repos Repositories) error) error
}
