package standing

// Entry is one team's row in round-robin standings. Entries are derived from
// completed matches on every call and never persisted.
type Entry struct {
	TeamID         string
	Position       int
	Played         int
	Wins           int
	Draws          int
	Losses         int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Cards          int
}
