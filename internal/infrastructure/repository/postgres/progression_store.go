package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/championship-progression/internal/domain/progression"
)

// ProgressionStore runs each unit of work in one transaction holding a
// transaction-scoped advisory lock keyed by the championship id. The lock is
// released on commit or rollback.
type ProgressionStore struct {
	db *sqlx.DB
}

func NewProgressionStore(db *sqlx.DB) *ProgressionStore {
	return &ProgressionStore{db: db}
}

func (s *ProgressionStore) WithinChampionship(ctx context.Context, championshipID string, fn func(ctx context.Context, repos progression.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin progression tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, championshipID); err != nil {
		return fmt.Errorf("lock championship %s: %w", championshipID, err)
	}

	if err := fn(ctx, progression.Repositories{
		Championships: NewChampionshipRepository(tx),
		Matches:       NewMatchRepository(tx),
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progression tx: %w", err)
	}
	return nil
}
