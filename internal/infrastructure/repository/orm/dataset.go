package orm

import (
	"fmt"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/platform/id"
)

// Dataset is one league ready to be written. Scores are grouped by match
// public id so each match can be inserted on its own worker.
type Dataset struct {
	Teams   []Team
	Players []Player
	Matches []Match
	Scores  map[string][]MatchScore
	Points  []MatchPoints
}

func (d Dataset) ScoreCount() int {
	total := 0
	for _, rows := range d.Scores {
		total += len(rows)
	}
	return total
}

// Source is the domain view of a league before public ids are assigned.
type Source struct {
	Teams   []team.Team
	Players []player.Player
	Matches []match.Match
	Scores  []matchscore.Score
	Points  []matchpoints.Points
}

// BuildDataset assigns a fresh public id to every team, player and match and
// rewrites all references through the same mapping. Rows pointing at an id the
// source does not define are rejected.
func BuildDataset(src Source, ids id.Generator) (Dataset, error) {
	publicIDs := make(map[string]string, len(src.Teams)+len(src.Players)+len(src.Matches))
	assign := func(kind, sourceID string) (string, error) {
		if _, exists := publicIDs[sourceID]; exists {
			return "", fmt.Errorf("duplicate %s id %q", kind, sourceID)
		}
		next, err := ids.NewID()
		if err != nil {
			return "", fmt.Errorf("assign %s id: %w", kind, err)
		}
		publicIDs[sourceID] = next
		return next, nil
	}
	lookup := func(kind, sourceID string) (string, error) {
		out, ok := publicIDs[sourceID]
		if !ok {
			return "", fmt.Errorf("unknown %s id %q", kind, sourceID)
		}
		return out, nil
	}

	out := Dataset{
		Teams:   make([]Team, 0, len(src.Teams)),
		Players: make([]Player, 0, len(src.Players)),
		Matches: make([]Match, 0, len(src.Matches)),
		Scores:  make(map[string][]MatchScore),
		Points:  make([]MatchPoints, 0, len(src.Points)),
	}

	for _, t := range src.Teams {
		if err := t.Validate(); err != nil {
			return Dataset{}, err
		}
		publicID, err := assign("team", t.ID)
		if err != nil {
			return Dataset{}, err
		}
		out.Teams = append(out.Teams, Team{PublicID: publicID, Name: t.Name})
	}

	for _, p := range src.Players {
		if err := p.Validate(); err != nil {
			return Dataset{}, err
		}
		teamID, err := lookup("team", p.TeamID)
		if err != nil {
			return Dataset{}, fmt.Errorf("player %s: %w", p.ID, err)
		}
		publicID, err := assign("player", p.ID)
		if err != nil {
			return Dataset{}, err
		}
		out.Players = append(out.Players, Player{
			PublicID:      publicID,
			TeamPublicID:  teamID,
			Name:          p.Name,
			HandicapIndex: p.HandicapIndex,
			PlayerType:    string(p.Type),
		})
	}

	for _, m := range src.Matches {
		homeID, err := lookup("team", m.HomeTeamID)
		if err != nil {
			return Dataset{}, fmt.Errorf("match %s: %w", m.ID, err)
		}
		awayID, err := lookup("team", m.AwayTeamID)
		if err != nil {
			return Dataset{}, fmt.Errorf("match %s: %w", m.ID, err)
		}
		publicID, err := assign("match", m.ID)
		if err != nil {
			return Dataset{}, err
		}
		status := m.Status
		if status == "" {
			status = match.StatusScheduled
		}
		out.Matches = append(out.Matches, Match{
			PublicID:         publicID,
			MatchDate:        m.Date.UTC(),
			WeekNumber:       m.WeekNumber,
			HomeTeamPublicID: homeID,
			AwayTeamPublicID: awayID,
			StartingHole:     m.StartingHole,
			Status:           string(status),
		})
	}

	for _, s := range src.Scores {
		matchID, err := lookup("match", s.MatchID)
		if err != nil {
			return Dataset{}, fmt.Errorf("score %d: %w", s.ID, err)
		}
		playerID, err := lookup("player", s.PlayerID)
		if err != nil {
			return Dataset{}, fmt.Errorf("score %d: %w", s.ID, err)
		}
		out.Scores[matchID] = append(out.Scores[matchID], MatchScore{
			MatchPublicID:  matchID,
			PlayerPublicID: playerID,
			Hole:           s.Hole,
			Score:          s.Strokes,
			UpdatedAt:      s.UpdatedAt,
		})
	}

	for _, p := range src.Points {
		matchID, err := lookup("match", p.MatchID)
		if err != nil {
			return Dataset{}, fmt.Errorf("points %d: %w", p.ID, err)
		}
		teamID, err := lookup("team", p.TeamID)
		if err != nil {
			return Dataset{}, fmt.Errorf("points %d: %w", p.ID, err)
		}
		var hole *int
		if p.Hole != nil {
			v := *p.Hole
			hole = &v
		}
		out.Points = append(out.Points, MatchPoints{
			MatchPublicID: matchID,
			TeamPublicID:  teamID,
			Hole:          hole,
			HomePoints:    p.HomePoints,
			AwayPoints:    p.AwayPoints,
			UpdatedAt:     p.UpdatedAt,
		})
	}

	return out, nil
}
