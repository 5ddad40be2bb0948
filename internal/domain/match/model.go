package match

import (
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
)

const (
	RoundRobinPrefix = "Rodada"
	RoundFirst       = "Round 1"
	RoundFinal       = "Final"
	SemiMarker       = "Semi"
)

// ErrRoundAlreadyExists reports that a fixture for a unique round (the Final)
// was created concurrently.
var ErrRoundAlreadyExists = crerr.New("round already exists")

// ErrUnknownPlayer reports a stat line for a player the store does not know.
var ErrUnknownPlayer = crerr.New("unknown player")

// Match is a fixture between two slots of a championship round. An empty team
// id is an open slot.
type Match struct {
	ID                string
	ChampionshipID    string
	Round             string
	HomeTeamID        string
	AwayTeamID        string
	HomeScore         *int
	AwayScore         *int
	HomeShootoutScore *int
	AwayShootoutScore *int
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (m Match) IsCompleted() bool {
	return NormalizeStatus(m.Status) == StatusCompleted
}

func (m Match) HasOpenSlot() bool {
	return strings.TrimSpace(m.HomeTeamID) == "" || strings.TrimSpace(m.AwayTeamID) == ""
}

func (m Match) HasTeam(teamID string) bool {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return false
	}
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

func (m Match) HasScore() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// PlayerStat is one player's line in a match, with the team resolved through
// the player's membership.
type PlayerStat struct {
	MatchID     string
	PlayerID    string
	TeamID      string
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

func (s PlayerStat) Cards() int {
	return s.YellowCards + s.RedCards
}

// Result is a completed match with its player stats.
type Result struct {
	Match Match
	Stats []PlayerStat
}

// Filter narrows Count. Empty fields match everything.
type Filter struct {
	RoundPrefix   string
	ExcludeStatus string
}

func (f Filter) Matches(item Match) bool {
	if f.RoundPrefix != "" && !strings.HasPrefix(item.Round, f.RoundPrefix) {
		return false
	}
	if f.ExcludeStatus != "" && NormalizeStatus(item.Status) == NormalizeStatus(f.ExcludeStatus) {
		return false
	}
	return true
}

// SlotUpdate carries the fields UpdateSlots writes. Nil fields are left as is,
// an empty team id clears the slot.
type SlotUpdate struct {
	HomeTeamID *string
	AwayTeamID *string
	Status     *string
}

func (u SlotUpdate) IsEmpty() bool {
	return u.HomeTeamID == nil && u.AwayTeamID == nil && u.Status == nil
}

func (u SlotUpdate) Apply(item Match) Match {
	if u.HomeTeamID != nil {
		item.HomeTeamID = strings.TrimSpace(*u.HomeTeamID)
	}
	if u.AwayTeamID != nil {
		item.AwayTeamID = strings.TrimSpace(*u.AwayTeamID)
	}
	if u.Status != nil {
		item.Status = NormalizeStatus(*u.Status)
	}
	return item
}

// ResultUpdate is a score report for one match. Stats replace the match's
// player stats when non-nil.
type ResultUpdate struct {
	HomeScore         *int
	AwayScore         *int
	HomeShootoutScore *int
	AwayShootoutScore *int
	Status            string
	Stats             []PlayerStat
}

func (u ResultUpdate) Apply(item Match) Match {
	item.HomeScore = u.HomeScore
	item.AwayScore = u.AwayScore
	item.HomeShootoutScore = u.HomeShootoutScore
	item.AwayShootoutScore = u.AwayShootoutScore
	item.Status = NormalizeStatus(u.Status)
	return item
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsKnownStatus(value string) bool {
	switch NormalizeStatus(value) {
	case StatusScheduled, StatusLive, StatusCompleted:
		return true
	default:
		return false
	}
}

func IsRoundRobinRound(round string) bool {
	return strings.HasPrefix(round, RoundRobinPrefix)
}

func IsFinalRound(round string) bool {
	return round == RoundFinal
}

// RoundRobinLabel returns the label of the n-th round-robin matchday.
func RoundRobinLabel(n int) string {
	return RoundRobinPrefix + " " + strconv.Itoa(n)
}
