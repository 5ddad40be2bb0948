package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                string         `db:"id"`
	ChampionshipID    string         `db:"championship_id"`
	Round             string         `db:"round"`
	HomeTeamID        sql.NullString `db:"home_team_id"`
	AwayTeamID        sql.NullString `db:"away_team_id"`
	HomeScore         sql.NullInt64  `db:"home_score"`
	AwayScore         sql.NullInt64  `db:"away_score"`
	HomeShootoutScore sql.NullInt64  `db:"home_shootout_score"`
	AwayShootoutScore sql.NullInt64  `db:"away_shootout_score"`
	Status            string         `db:"status"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type playerMatchStatTableModel struct {
	MatchID     string `db:"match_id"`
	PlayerID    string `db:"player_id"`
	Goals       int    `db:"goals"`
	Assists     int    `db:"assists"`
	YellowCards int    `db:"yellow_cards"`
	RedCards    int    `db:"red_cards"`
}

type playerMatchStatRow struct {
	MatchID     string         `db:"match_id"`
	PlayerID    string         `db:"player_id"`
	Goals       int            `db:"goals"`
	Assists     int            `db:"assists"`
	YellowCards int            `db:"yellow_cards"`
	RedCards    int            `db:"red_cards"`
	TeamID      sql.NullString `db:"team_id"`
}

var matchColumns = []string{
	"id",
	"championship_id",
	"round",
	"home_team_id",
	"away_team_id",
	"home_score",
	"away_score",
	"home_shootout_score",
	"away_shootout_score",
	"status",
	"created_at",
	"updated_at",
}
