package knockout

import (
	"strings"

	"github.com/riskibarqy/championship-progression/internal/domain/match"
)

// Advance returns the winner of a completed knockout match. A level score is
// settled by the shootout; without a shootout winner the match is undecided.
func Advance(item match.Match) (string, bool) {
	homeID := strings.TrimSpace(item.HomeTeamID)
	awayID := strings.TrimSpace(item.AwayTeamID)
	if homeID == "" || awayID == "" || !item.HasScore() {
		return "", false
	}

	switch {
	case *item.HomeScore > *item.AwayScore:
		return homeID, true
	case *item.AwayScore > *item.HomeScore:
		return awayID, true
	}

	if item.HomeShootoutScore == nil || item.AwayShootoutScore == nil {
		return "", false
	}
	switch {
	case *item.HomeShootoutScore > *item.AwayShootoutScore:
		return homeID, true
	case *item.AwayShootoutScore > *item.HomeShootoutScore:
		return awayID, true
	default:
		return "", false
	}
}

// NextRound maps a knockout round to the round its winner moves into.
func NextRound(round string) (string, bool) {
	switch {
	case round == match.RoundFirst:
		return match.RoundFinal, true
	case strings.Contains(round, match.SemiMarker):
		return match.RoundFinal, true
	default:
		return "", false
	}
}
