package memory

import (
	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/domain/team"
)

const (
	ChampionshipIDCopaRoundRobin = "copa-liga-2026"
	ChampionshipIDCopaKnockout   = "copa-mata-mata-2026"
)

// Seed is demo data for the in-memory store.
type Seed struct {
	Championships []championship.Championship
	Teams         []team.Team
	Matches       []match.Match
	PlayerTeams   map[string]string
}

func DemoSeed() Seed {
	return Seed{
		Championships: SeedChampionships(),
		Teams:         SeedTeams(),
		Matches:       SeedMatches(),
		PlayerTeams:   SeedPlayerTeams(),
	}
}

func SeedChampionships() []championship.Championship {
	return []championship.Championship{
		{
			ID:     ChampionshipIDCopaRoundRobin,
			Name:   "Copa Liga 2026",
			Type:   championship.TypeRoundRobinWithFinal,
			Status: championship.StatusLive,
		},
		{
			ID:     ChampionshipIDCopaKnockout,
			Name:   "Copa Mata-Mata 2026",
			Type:   championship.TypeKnockoutOnly,
			Status: championship.StatusScheduled,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "liga-aguias", ChampionshipID: ChampionshipIDCopaRoundRobin, Name: "Aguias FC", Short: "AGU"},
		{ID: "liga-falcoes", ChampionshipID: ChampionshipIDCopaRoundRobin, Name: "Falcoes EC", Short: "FAL"},
		{ID: "liga-lobos", ChampionshipID: ChampionshipIDCopaRoundRobin, Name: "Lobos SC", Short: "LOB"},
		{ID: "liga-tubaroes", ChampionshipID: ChampionshipIDCopaRoundRobin, Name: "Tubaroes AC", Short: "TUB"},
		{ID: "mata-raposas", ChampionshipID: ChampionshipIDCopaKnockout, Name: "Raposas FC", Short: "RAP"},
		{ID: "mata-corujas", ChampionshipID: ChampionshipIDCopaKnockout, Name: "Corujas EC", Short: "COR"},
		{ID: "mata-panteras", ChampionshipID: ChampionshipIDCopaKnockout, Name: "Panteras SC", Short: "PAN"},
		{ID: "mata-touros", ChampionshipID: ChampionshipIDCopaKnockout, Name: "Touros AC", Short: "TOU"},
	}
}

func SeedMatches() []match.Match {
	score := func(v int) *int { return &v }

	return []match.Match{
		{ID: "liga-r1-m1", ChampionshipID: ChampionshipIDCopaRoundRobin, Round: match.RoundRobinLabel(1), HomeTeamID: "liga-aguias", AwayTeamID: "liga-falcoes", HomeScore: score(2), AwayScore: score(1), Status: match.StatusCompleted},
		{ID: "liga-r1-m2", ChampionshipID: ChampionshipIDCopaRoundRobin, Round: match.RoundRobinLabel(1), HomeTeamID: "liga-lobos", AwayTeamID: "liga-tubaroes", HomeScore: score(0), AwayScore: score(0), Status: match.StatusCompleted},
		{ID: "liga-r2-m1", ChampionshipID: ChampionshipIDCopaRoundRobin, Round: match.RoundRobinLabel(2), HomeTeamID: "liga-aguias", AwayTeamID: "liga-lobos", Status: match.StatusScheduled},
		{ID: "liga-r2-m2", ChampionshipID: ChampionshipIDCopaRoundRobin, Round: match.RoundRobinLabel(2), HomeTeamID: "liga-falcoes", AwayTeamID: "liga-tubaroes", Status: match.StatusScheduled},
		{ID: "liga-r3-m1", ChampionshipID: ChampionshipIDCopaRoundRobin, Round: match.RoundRobinLabel(3), HomeTeamID: "liga-aguias", AwayTeamID: "liga-tubaroes", Status: match.StatusScheduled},
		{ID: "liga-r3-m2", ChampionshipID: ChampionshipIDCopaRoundRobin, Round: match.RoundRobinLabel(3), HomeTeamID: "liga-falcoes", AwayTeamID: "liga-lobos", Status: match.StatusScheduled},
		{ID: "mata-semi-1", ChampionshipID: ChampionshipIDCopaKnockout, Round: "Semifinal 1", HomeTeamID: "mata-raposas", AwayTeamID: "mata-corujas", Status: match.StatusScheduled},
		{ID: "mata-semi-2", ChampionshipID: ChampionshipIDCopaKnockout, Round: "Semifinal 2", HomeTeamID: "mata-panteras", AwayTeamID: "mata-touros", Status: match.StatusScheduled},
	}
}

func SeedPlayerTeams() map[string]string {
	return map[string]string{
		"liga-aguias-10":   "liga-aguias",
		"liga-aguias-9":    "liga-aguias",
		"liga-falcoes-10":  "liga-falcoes",
		"liga-lobos-4":     "liga-lobos",
		"liga-tubaroes-7":  "liga-tubaroes",
		"mata-raposas-9":   "mata-raposas",
		"mata-corujas-11":  "mata-corujas",
		"mata-panteras-10": "mata-panteras",
		"mata-touros-8":    "mata-touros",
	}
}
