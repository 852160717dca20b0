package team

import (
	"fmt"
	"strings"
)

// Team is one side of the league table.
type Team struct {
	ID   string
	Name string
}

// Validate rejects rows the standings fold could not label.
func (t Team) Validate() error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return fmt.Errorf("team id is required")
	case strings.TrimSpace(t.Name) == "":
		return fmt.Errorf("team %s: name is required", t.ID)
	}
	return nil
}
