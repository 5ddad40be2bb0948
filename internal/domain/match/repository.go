package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByChampionship(ctx context.Context, championshipID string) ([]Match, error)
	ListByRound(ctx context.Context, championshipID, round string) ([]Match, error)
	Count(ctx context.Context, championshipID string, filter Filter) (int, error)
	// ListResults returns completed matches whose round starts with roundPrefix.
	ListResults(ctx context.Context, championshipID, roundPrefix string) ([]Result, error)
	FindByRound(ctx context.Context, championshipID, round string, openSlotOnly bool) (Match, bool, error)
	// Create returns ErrRoundAlreadyExists when a unique round already has a fixture.
	Create(ctx context.Context, item Match) (Match, error)
	UpdateSlots(ctx context.Context, matchID string, update SlotUpdate) error
	UpdateResult(ctx context.Context, matchID string, update ResultUpdate) error
}
