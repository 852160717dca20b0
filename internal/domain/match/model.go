package match

import (
	"fmt"
	"strings"
	"time"
)

// Status is the normalized lifecycle of a match. Raw values are parsed once
// with ParseStatus when rows enter the service.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusFinalized  Status = "FINALIZED"
	StatusCancelled  Status = "CANCELLED"
)

// DecidedStatuses lists the statuses that count toward standings.
var DecidedStatuses = []Status{StatusCompleted, StatusFinalized}

func ParseStatus(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch normalized {
	case "":
		return "", fmt.Errorf("match status is empty")
	case "SCHEDULED":
		return StatusScheduled, nil
	case "IN_PROGRESS", "INPROGRESS", "LIVE":
		return StatusInProgress, nil
	case "COMPLETED", "COMPLETE", "DONE":
		return StatusCompleted, nil
	case "FINALIZED", "FINAL":
		return StatusFinalized, nil
	case "CANCELLED", "CANCELED":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown match status %q", value)
	}
}

func (s Status) IsDecided() bool {
	for _, decided := range DecidedStatuses {
		if s == decided {
			return true
		}
	}
	return false
}

// Match is one weekly pairing between a home and an away team.
type Match struct {
	ID           string
	Date         time.Time
	WeekNumber   int
	HomeTeamID   string
	AwayTeamID   string
	StartingHole int
	Status       Status
}

func (m Match) IsDecided() bool {
	return m.Status.IsDecided()
}

// Filter narrows schedule reads. Zero values mean no filter.
type Filter struct {
	WeekNumber int
	Status     Status
}
