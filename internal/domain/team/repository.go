package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByChampionship(ctx context.Context, championshipID string) ([]Team, error)
}
