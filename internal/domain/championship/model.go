package championship

import (
	"fmt"
	"strings"
	"time"
)

// Type selects how a championship progresses from one match to the next.
type Type string

const (
	TypeRoundRobinWithFinal Type = "ROUND_ROBIN_WITH_FINAL"
	TypeKnockoutOnly        Type = "KNOCKOUT_ONLY"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
)

// Championship is a tournament whose matches are played in rounds.
type Championship struct {
	ID        string
	Name      string
	Type      Type
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Championship) IsCompleted() bool {
	return NormalizeStatus(c.Status) == StatusCompleted
}

func (c Championship) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("championship id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("championship name is required")
	}
	if !IsKnownType(c.Type) {
		return fmt.Errorf("unknown championship type %q", c.Type)
	}

	return nil
}

func NormalizeType(value string) Type {
	return Type(strings.ToUpper(strings.TrimSpace(value)))
}

func IsKnownType(value Type) bool {
	switch value {
	case TypeRoundRobinWithFinal, TypeKnockoutOnly:
		return true
	default:
		return false
	}
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}
