package standing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
	"github.com/riskibarqy/golf-league/internal/domain/team"
)

const pointEpsilon = 1e-9

// Result is the outcome of one match from a team's point of view.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultTie  Result = "T"
)

// Policy holds the tunable checks applied to aggregate points.
type Policy struct {
	// AllowedPointTotals lists the valid home+away sums. Empty disables the check.
	AllowedPointTotals []float64
}

func DefaultPolicy() Policy {
	return Policy{AllowedPointTotals: []float64{9, 10}}
}

func (p Policy) totalAllowed(total float64) bool {
	if len(p.AllowedPointTotals) == 0 {
		return true
	}
	for _, allowed := range p.AllowedPointTotals {
		if math.Abs(total-allowed) < pointEpsilon {
			return true
		}
	}
	return false
}

type TeamInput struct {
	Teams   []team.Team
	Matches []match.Match
	// Points holds aggregate rows for the matches, duplicates included.
	Points []matchpoints.Points
}

type WeeklyPoints struct {
	WeekNumber   int
	Points       float64
	MatchID      string
	OpponentID   string
	OpponentName string
	Result       Result
}

type TeamStanding struct {
	Position      int
	TeamID        string
	TeamName      string
	MatchesPlayed int
	MatchesWon    int
	MatchesLost   int
	MatchesTied   int
	LeaguePoints  float64
	WinPercentage float64
	WeeklyPoints  []WeeklyPoints
}

type TeamResult struct {
	Standings []TeamStanding
	Warnings  []Warning
}

// ComputeTeamStandings folds decided matches and their aggregate points into
// a league table. Every team is present, including teams with no matches.
func ComputeTeamStandings(in TeamInput, policy Policy) TeamResult {
	rows := make(map[string]*TeamStanding, len(in.Teams))
	order := make([]string, 0, len(in.Teams))
	for _, t := range in.Teams {
		if _, exists := rows[t.ID]; exists {
			continue
		}
		rows[t.ID] = &TeamStanding{TeamID: t.ID, TeamName: t.Name, WeeklyPoints: []WeeklyPoints{}}
		order = append(order, t.ID)
	}

	pointsByMatch := make(map[string][]matchpoints.Points, len(in.Matches))
	for _, p := range in.Points {
		if !p.IsAggregate() {
			continue
		}
		pointsByMatch[p.MatchID] = append(pointsByMatch[p.MatchID], p)
	}

	matches := append([]match.Match(nil), in.Matches...)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].WeekNumber != matches[j].WeekNumber {
			return matches[i].WeekNumber < matches[j].WeekNumber
		}
		return matches[i].ID < matches[j].ID
	})

	warnings := make([]Warning, 0)
	for _, m := range matches {
		if !m.IsDecided() {
			warnings = append(warnings, Warning{
				Kind:    WarningUndecidedMatch,
				MatchID: m.ID,
				Message: fmt.Sprintf("match status %s is not decided", m.Status),
			})
			continue
		}

		home, homeOK := rows[m.HomeTeamID]
		away, awayOK := rows[m.AwayTeamID]
		if !homeOK || !awayOK || m.HomeTeamID == m.AwayTeamID {
			warnings = append(warnings, Warning{
				Kind:    WarningUnknownTeam,
				MatchID: m.ID,
				TeamID:  unknownTeamID(m, homeOK),
				Message: fmt.Sprintf("match pairs unknown or identical teams %q vs %q", m.HomeTeamID, m.AwayTeamID),
			})
			continue
		}

		candidates := pointsByMatch[m.ID]
		points, found := matchpoints.Canonical(candidates)
		if !found {
			warnings = append(warnings, Warning{
				Kind:    WarningMissingAggregatePoints,
				MatchID: m.ID,
				Message: "decided match has no aggregate points row",
			})
			continue
		}
		if len(candidates) > 1 {
			warnings = append(warnings, Warning{
				Kind:    WarningDuplicateAggregatePoints,
				MatchID: m.ID,
				Message: fmt.Sprintf("%d aggregate points rows, using row %d", len(candidates), points.ID),
			})
		}
		if !policy.totalAllowed(points.Total()) {
			warnings = append(warnings, Warning{
				Kind:    WarningUnexpectedPointTotal,
				MatchID: m.ID,
				Message: fmt.Sprintf("aggregate points %.2f + %.2f = %.2f is not an allowed total", points.HomePoints, points.AwayPoints, points.Total()),
			})
			continue
		}

		homeResult, awayResult := outcome(points.HomePoints, points.AwayPoints)
		accrue(home, away, m, points.HomePoints, homeResult)
		accrue(away, home, m, points.AwayPoints, awayResult)
	}

	standings := make([]TeamStanding, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if row.MatchesPlayed > 0 {
			won := float64(row.MatchesWon) + 0.5*float64(row.MatchesTied)
			row.WinPercentage = roundTo1(won / float64(row.MatchesPlayed) * 100)
		}
		sort.SliceStable(row.WeeklyPoints, func(i, j int) bool {
			a, b := row.WeeklyPoints[i], row.WeeklyPoints[j]
			if a.WeekNumber != b.WeekNumber {
				return a.WeekNumber < b.WeekNumber
			}
			return a.MatchID < b.MatchID
		})
		standings = append(standings, *row)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if math.Abs(a.LeaguePoints-b.LeaguePoints) >= pointEpsilon {
			return a.LeaguePoints > b.LeaguePoints
		}
		if a.MatchesWon != b.MatchesWon {
			return a.MatchesWon > b.MatchesWon
		}
		an, bn := strings.ToLower(a.TeamName), strings.ToLower(b.TeamName)
		if an != bn {
			return an < bn
		}
		return a.TeamID < b.TeamID
	})
	for i := range standings {
		standings[i].Position = i + 1
	}

	return TeamResult{Standings: standings, Warnings: warnings}
}

func outcome(home, away float64) (Result, Result) {
	switch {
	case home-away > pointEpsilon:
		return ResultWin, ResultLoss
	case away-home > pointEpsilon:
		return ResultLoss, ResultWin
	default:
		return ResultTie, ResultTie
	}
}

func accrue(row, opponent *TeamStanding, m match.Match, points float64, result Result) {
	row.MatchesPlayed++
	switch result {
	case ResultWin:
		row.MatchesWon++
	case ResultLoss:
		row.MatchesLost++
	default:
		row.MatchesTied++
	}
	row.LeaguePoints += points
	row.WeeklyPoints = append(row.WeeklyPoints, WeeklyPoints{
		WeekNumber:   m.WeekNumber,
		Points:       points,
		MatchID:      m.ID,
		OpponentID:   opponent.TeamID,
		OpponentName: opponent.TeamName,
		Result:       result,
	})
}

func unknownTeamID(m match.Match, homeKnown bool) string {
	if !homeKnown {
		return m.HomeTeamID
	}
	return m.AwayTeamID
}
