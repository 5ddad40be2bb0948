package championship

import "context"

// Repository describes championship persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, championshipID string) (Championship, bool, error)
	List(ctx context.Context) ([]Championship, error)
	// UpdateStatus never moves a championship out of COMPLETED.
	UpdateStatus(ctx context.Context, championshipID, status string) error
}
