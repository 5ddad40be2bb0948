package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	qb "github.com/riskibarqy/championship-progression/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db sqlx.ExtContext
}

// NewChampionshipRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewChampionshipRepository(db sqlx.ExtContext) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, championshipID string) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.Eq("id", championshipID)).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build select championship query: %w", err)
	}

	var row championshipTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("get championship by id: %w", err)
	}

	return championshipFromRow(row), true, nil
}

func (r *ChampionshipRepository) List(ctx context.Context) ([]championship.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championships: %w", err)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, championshipFromRow(row))
	}
	return out, nil
}

// UpdateStatus never moves a championship out of COMPLETED.
func (r *ChampionshipRepository) UpdateStatus(ctx context.Context, championshipID, status string) error {
	query, args, err := qb.Update("championships").
		Set("status", championship.NormalizeStatus(status)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", championshipID),
			qb.Ne("status", championship.StatusCompleted),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update championship status query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update championship status: %w", err)
	}
	return nil
}

func championshipFromRow(row championshipTableModel) championship.Championship {
	return championship.Championship{
		ID:        row.ID,
		Name:      row.Name,
		Type:      championship.NormalizeType(row.Type),
		Status:    championship.NormalizeStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
