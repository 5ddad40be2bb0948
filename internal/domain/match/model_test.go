package match

import "testing"

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	openRoundRobin := Filter{RoundPrefix: RoundRobinPrefix, ExcludeStatus: StatusCompleted}

	tests := []struct {
		name string
		item Match
		want bool
	}{
		{name: "scheduled matchday", item: Match{Round: RoundRobinLabel(2), Status: StatusScheduled}, want: true},
		{name: "blank status counts as scheduled", item: Match{Round: RoundRobinLabel(3)}, want: true},
		{name: "completed matchday", item: Match{Round: RoundRobinLabel(1), Status: "completed"}},
		{name: "final is not a matchday", item: Match{Round: RoundFinal, Status: StatusScheduled}},
	}

	for _, tt := range tests {
		if got := openRoundRobin.Matches(tt.item); got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	if !(Filter{}).Matches(Match{Round: RoundFinal, Status: StatusCompleted}) {
		t.Fatalf("empty filter must match everything")
	}
}
