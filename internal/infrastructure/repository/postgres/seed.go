package postgres

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/championship-progression/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo data into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM championships`); err != nil {
		return fmt.Errorf("count championships for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := memory.DemoSeed()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(label, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", label, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", label, err)
		}
		return nil
	}

	for _, c := range seed.Championships {
		if err := exec("championship "+c.ID, `
INSERT INTO championships (id, name, type, status)
VALUES (:id, :name, :type, :status)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":     c.ID,
			"name":   c.Name,
			"type":   string(c.Type),
			"status": c.Status,
		}); err != nil {
			return err
		}
	}

	for _, t := range seed.Teams {
		if err := exec("team "+t.ID, `
INSERT INTO teams (id, championship_id, name, short_name)
VALUES (:id, :championship_id, :name, :short_name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              t.ID,
			"championship_id": stringToNullString(t.ChampionshipID),
			"name":            t.Name,
			"short_name":      t.Short,
		}); err != nil {
			return err
		}
	}

	playerIDs := make([]string, 0, len(seed.PlayerTeams))
	for playerID := range seed.PlayerTeams {
		playerIDs = append(playerIDs, playerID)
	}
	sort.Strings(playerIDs)
	for _, playerID := range playerIDs {
		if err := exec("player "+playerID, `
INSERT INTO players (id, team_id, name)
VALUES (:id, :team_id, :name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":      playerID,
			"team_id": seed.PlayerTeams[playerID],
			"name":    playerID,
		}); err != nil {
			return err
		}
	}

	// created_at keeps the seed order, which is the listing order.
	base := time.Now().UTC().Add(-time.Duration(len(seed.Matches)) * time.Second)
	for i, m := range seed.Matches {
		if err := exec("match "+m.ID, `
INSERT INTO matches (
	id, championship_id, round, home_team_id, away_team_id,
	home_score, away_score, home_shootout_score, away_shootout_score,
	status, created_at, updated_at
)
VALUES (
	:id, :championship_id, :round, :home_team_id, :away_team_id,
	:home_score, :away_score, :home_shootout_score, :away_shootout_score,
	:status, :created_at, :created_at
)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":                  m.ID,
			"championship_id":     m.ChampionshipID,
			"round":               m.Round,
			"home_team_id":        stringToNullString(m.HomeTeamID),
			"away_team_id":        stringToNullString(m.AwayTeamID),
			"home_score":          intPtrToNullInt64(m.HomeScore),
			"away_score":          intPtrToNullInt64(m.AwayScore),
			"home_shootout_score": intPtrToNullInt64(m.HomeShootoutScore),
			"away_shootout_score": intPtrToNullInt64(m.AwayShootoutScore),
			"status":              m.Status,
			"created_at":          base.Add(time.Duration(i) * time.Second),
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
