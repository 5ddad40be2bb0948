package httpapi

import (
	"time"

	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/usecase"
)

type championshipDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type matchDTO struct {
	ID                string    `json:"id"`
	ChampionshipID    string    `json:"championship_id"`
	Round             string    `json:"round"`
	HomeTeamID        *string   `json:"home_team_id"`
	AwayTeamID        *string   `json:"away_team_id"`
	HomeScore         *int      `json:"home_score"`
	AwayScore         *int      `json:"away_score"`
	HomeShootoutScore *int      `json:"home_shootout_score"`
	AwayShootoutScore *int      `json:"away_shootout_score"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	TeamShort      string `json:"team_short"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Cards          int    `json:"cards"`
}

type updateMatchResultRequest struct {
	HomeScore         *int                   `json:"home_score" validate:"omitempty,min=0"`
	AwayScore         *int                   `json:"away_score" validate:"omitempty,min=0"`
	HomeShootoutScore *int                   `json:"home_shootout_score" validate:"omitempty,min=0"`
	AwayShootoutScore *int                   `json:"away_shootout_score" validate:"omitempty,min=0"`
	Status            string                 `json:"status" validate:"required,oneof=SCHEDULED LIVE COMPLETED scheduled live completed"`
	Stats             []playerStatRequestDTO `json:"stats" validate:"omitempty,dive"`
}

type playerStatRequestDTO struct {
	PlayerID    string `json:"player_id" validate:"required,max=128"`
	Goals       int    `json:"goals" validate:"min=0"`
	Assists     int    `json:"assists" validate:"min=0"`
	YellowCards int    `json:"yellow_cards" validate:"min=0,max=2"`
	RedCards    int    `json:"red_cards" validate:"min=0,max=1"`
}

type reconcileRequest struct {
	ChampionshipIDs []string `json:"championship_ids" validate:"omitempty,max=200,dive,required"`
	MaxWorkers      int      `json:"max_workers" validate:"omitempty,min=1,max=64"`
}

func toChampionshipDTO(item championship.Championship) championshipDTO {
	return championshipDTO{
		ID:        item.ID,
		Name:      item.Name,
		Type:      string(item.Type),
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toMatchDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:                item.ID,
		ChampionshipID:    item.ChampionshipID,
		Round:             item.Round,
		HomeTeamID:        optionalString(item.HomeTeamID),
		AwayTeamID:        optionalString(item.AwayTeamID),
		HomeScore:         item.HomeScore,
		AwayScore:         item.AwayScore,
		HomeShootoutScore: item.HomeShootoutScore,
		AwayShootoutScore: item.AwayShootoutScore,
		Status:            item.Status,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func toStandingDTO(item usecase.TeamStanding) standingDTO {
	return standingDTO{
		Position:       item.Position,
		TeamID:         item.TeamID,
		TeamName:       item.TeamName,
		TeamShort:      item.TeamShort,
		Played:         item.Played,
		Wins:           item.Wins,
		Draws:          item.Draws,
		Losses:         item.Losses,
		Points:         item.Points,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		Cards:          item.Cards,
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
