package standing

import (
	"sort"
	"strings"

	"github.com/riskibarqy/championship-progression/internal/domain/match"
)

const (
	pointsWin          = 3
	pointsShootoutWin  = 1
	pointsUndecidedTie = 0
)

// Calculate ranks the teams appearing in results by points, wins, goal
// difference, cards (fewer first) and goals for. Teams still level after all
// five keys are ordered by team id. Results missing a team or a score are
// skipped.
func Calculate(results []match.Result) []Entry {
	byTeam := make(map[string]*Entry)
	order := make([]string, 0)
	entryFor := func(teamID string) *Entry {
		if entry, ok := byTeam[teamID]; ok {
			return entry
		}
		entry := &Entry{TeamID: teamID}
		byTeam[teamID] = entry
		order = append(order, teamID)
		return entry
	}

	for _, result := range results {
		item := result.Match
		homeID := strings.TrimSpace(item.HomeTeamID)
		awayID := strings.TrimSpace(item.AwayTeamID)
		if homeID == "" || awayID == "" || !item.HasScore() {
			continue
		}

		home := entryFor(homeID)
		away := entryFor(awayID)
		applyScore(home, away, item)

		for _, stat := range result.Stats {
			switch stat.TeamID {
			case homeID:
				home.Cards += stat.Cards()
			case awayID:
				away.Cards += stat.Cards()
			}
		}
	}

	out := make([]Entry, 0, len(order))
	for _, teamID := range order {
		entry := byTeam[teamID]
		entry.GoalDifference = entry.GoalsFor - entry.GoalsAgainst
		out = append(out, *entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func applyScore(home, away *Entry, item match.Match) {
	homeScore, awayScore := *item.HomeScore, *item.AwayScore

	home.Played++
	away.Played++
	home.GoalsFor += homeScore
	home.GoalsAgainst += awayScore
	away.GoalsFor += awayScore
	away.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		home.Wins++
		home.Points += pointsWin
		away.Losses++
	case awayScore > homeScore:
		away.Wins++
		away.Points += pointsWin
		home.Losses++
	default:
		home.Draws++
		away.Draws++
		home.Points += pointsUndecidedTie
		away.Points += pointsUndecidedTie
		if item.HomeShootoutScore == nil || item.AwayShootoutScore == nil {
			return
		}
		switch {
		case *item.HomeShootoutScore > *item.AwayShootoutScore:
			home.Points += pointsShootoutWin
		case *item.AwayShootoutScore > *item.HomeShootoutScore:
			away.Points += pointsShootoutWin
		}
	}
}

func less(a, b Entry) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.Cards != b.Cards {
		return a.Cards < b.Cards
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return a.TeamID < b.TeamID
}
