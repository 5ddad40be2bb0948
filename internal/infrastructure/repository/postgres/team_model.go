package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID             string         `db:"id"`
	ChampionshipID sql.NullString `db:"championship_id"`
	Name           string         `db:"name"`
	Short          string         `db:"short_name"`
	CreatedAt      time.Time      `db:"created_at"`
}

type playerTableModel struct {
	ID     string `db:"id"`
	TeamID string `db:"team_id"`
	Name   string `db:"name"`
}
