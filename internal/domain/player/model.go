package player

import (
	"fmt"
	"strings"
)

// Type separates rostered players from fill-ins.
type Type string

const (
	TypePrimary    Type = "PRIMARY"
	TypeSubstitute Type = "SUBSTITUTE"
)

func ParseType(value string) (Type, error) {
	switch Type(strings.ToUpper(strings.TrimSpace(value))) {
	case TypePrimary:
		return TypePrimary, nil
	case TypeSubstitute, "SUB":
		return TypeSubstitute, nil
	default:
		return "", fmt.Errorf("invalid player type %q", value)
	}
}

// Player is a golfer on a team roster.
type Player struct {
	ID            string
	TeamID        string
	Name          string
	HandicapIndex float64
	Type          Type
}

func (p Player) IsPrimary() bool {
	return p.Type == TypePrimary
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Type != TypePrimary && p.Type != TypeSubstitute {
		return fmt.Errorf("invalid player type: %s", p.Type)
	}

	return nil
}
