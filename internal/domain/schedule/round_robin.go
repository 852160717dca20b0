package schedule

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/golf-league/internal/domain/team"
)

// Pairing is one generated fixture. A bye week has an empty AwayTeamID.
type Pairing struct {
	WeekNumber int
	HomeTeamID string
	AwayTeamID string
}

func (p Pairing) IsBye() bool {
	return p.AwayTeamID == ""
}

// RoundRobin pairs every team with every other team once using the circle
// method. Odd counts add a bye slot. Home and away alternate by week so each
// team gets a balanced share of home matches.
func RoundRobin(teams []team.Team, startWeek int) ([]Pairing, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("round robin needs at least 2 teams, got %d", len(teams))
	}
	if startWeek < 1 {
		return nil, fmt.Errorf("start week must be positive, got %d", startWeek)
	}

	ids := make([]string, 0, len(teams)+1)
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate team id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	if len(ids)%2 == 1 {
		ids = append(ids, "")
	}

	n := len(ids)
	rounds := n - 1
	pairings := make([]Pairing, 0, rounds*n/2)
	rotation := append([]string(nil), ids...)

	for round := 0; round < rounds; round++ {
		week := startWeek + round
		for i := 0; i < n/2; i++ {
			home, away := rotation[i], rotation[n-1-i]
			if i == 0 && round%2 == 1 {
				home, away = away, home
			}
			switch {
			case home == "":
				pairings = append(pairings, Pairing{WeekNumber: week, HomeTeamID: away})
			case away == "":
				pairings = append(pairings, Pairing{WeekNumber: week, HomeTeamID: home})
			default:
				pairings = append(pairings, Pairing{WeekNumber: week, HomeTeamID: home, AwayTeamID: away})
			}
		}

		// keep the first slot fixed and rotate the rest clockwise
		last := rotation[n-1]
		copy(rotation[2:], rotation[1:n-1])
		rotation[1] = last
	}

	return pairings, nil
}
