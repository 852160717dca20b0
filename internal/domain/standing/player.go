package standing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/handicap"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
	"github.com/riskibarqy/golf-league/internal/domain/player"
)

type PlayerInput struct {
	// Players is the primary roster; other player types are ignored.
	Players []player.Player
	// Matches is the decided set the scores are checked against.
	Matches []match.Match
	Scores  []matchscore.Score
}

type PlayerStanding struct {
	Position        int
	PlayerID        string
	PlayerName      string
	TeamID          string
	HandicapIndex   float64
	CourseHandicap  int
	TotalGrossScore int
	TotalNetScore   int
	MatchesPlayed   int
	RoundsPlayed    int
	PartialRounds   int
	HolesPlayed     int
	AverageNetScore float64
}

type PlayerResult struct {
	Standings []PlayerStanding
	Warnings  []Warning
}

type roundKey struct {
	matchID  string
	playerID string
}

type holeKey struct {
	roundKey
	hole int
}

// ComputePlayerStandings sums gross and net strokes per primary player over
// decided matches. Partial rounds count, but only scored holes are summed.
func ComputePlayerStandings(in PlayerInput, course handicap.Course) PlayerResult {
	rows := make(map[string]*PlayerStanding, len(in.Players))
	order := make([]string, 0, len(in.Players))
	for _, p := range in.Players {
		if !p.IsPrimary() {
			continue
		}
		if _, exists := rows[p.ID]; exists {
			continue
		}
		rows[p.ID] = &PlayerStanding{
			PlayerID:       p.ID,
			PlayerName:     p.Name,
			TeamID:         p.TeamID,
			HandicapIndex:  p.HandicapIndex,
			CourseHandicap: handicap.CourseHandicap(p.HandicapIndex, course),
		}
		order = append(order, p.ID)
	}

	decided := make(map[string]bool, len(in.Matches))
	for _, m := range in.Matches {
		if m.IsDecided() {
			decided[m.ID] = true
		}
	}

	scores := append([]matchscore.Score(nil), in.Scores...)
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.PlayerID != b.PlayerID {
			return a.PlayerID < b.PlayerID
		}
		if a.Hole != b.Hole {
			return a.Hole < b.Hole
		}
		return a.ID < b.ID
	})

	warnings := make([]Warning, 0)
	undecidedSeen := make(map[string]bool)
	unknownSeen := make(map[roundKey]bool)
	holes := make(map[holeKey]matchscore.Score, len(scores))
	rounds := make([]roundKey, 0)
	roundSeen := make(map[roundKey]bool)

	for _, s := range scores {
		key := roundKey{matchID: s.MatchID, playerID: s.PlayerID}
		if !decided[s.MatchID] {
			if !undecidedSeen[s.MatchID] {
				undecidedSeen[s.MatchID] = true
				warnings = append(warnings, Warning{
					Kind:    WarningUndecidedMatch,
					MatchID: s.MatchID,
					Message: "scores reference a match outside the decided set",
				})
			}
			continue
		}
		if _, ok := rows[s.PlayerID]; !ok {
			if !unknownSeen[key] {
				unknownSeen[key] = true
				warnings = append(warnings, Warning{
					Kind:     WarningUnknownPlayer,
					MatchID:  s.MatchID,
					PlayerID: s.PlayerID,
					Message:  "scores reference a player outside the primary roster",
				})
			}
			continue
		}
		if !s.HasValidHole() || s.Strokes <= 0 {
			warnings = append(warnings, Warning{
				Kind:     WarningInvalidHoleScore,
				MatchID:  s.MatchID,
				PlayerID: s.PlayerID,
				Message:  fmt.Sprintf("score row %d has hole %d and strokes %d", s.ID, s.Hole, s.Strokes),
			})
			continue
		}

		hk := holeKey{roundKey: key, hole: s.Hole}
		if prev, exists := holes[hk]; exists {
			kept := prev
			if s.UpdatedAt.After(prev.UpdatedAt) || (s.UpdatedAt.Equal(prev.UpdatedAt) && s.ID > prev.ID) {
				kept = s
			}
			holes[hk] = kept
			warnings = append(warnings, Warning{
				Kind:     WarningDuplicateHoleScore,
				MatchID:  s.MatchID,
				PlayerID: s.PlayerID,
				Message:  fmt.Sprintf("duplicate score for hole %d, using row %d", s.Hole, kept.ID),
			})
			continue
		}
		holes[hk] = s
		if !roundSeen[key] {
			roundSeen[key] = true
			rounds = append(rounds, key)
		}
	}

	for _, key := range rounds {
		gross, played := 0, 0
		for hole := 1; hole <= matchscore.HolesPerRound; hole++ {
			s, ok := holes[holeKey{roundKey: key, hole: hole}]
			if !ok {
				continue
			}
			gross += s.Strokes
			played++
		}

		row := rows[key.playerID]
		net := gross - handicap.StrokeAllowance(row.CourseHandicap, played)
		row.TotalGrossScore += gross
		row.TotalNetScore += net
		row.RoundsPlayed++
		row.MatchesPlayed++
		row.HolesPlayed += played
		if played < matchscore.HolesPerRound {
			row.PartialRounds++
			warnings = append(warnings, Warning{
				Kind:     WarningPartialRound,
				MatchID:  key.matchID,
				PlayerID: key.playerID,
				Message:  fmt.Sprintf("round has %d of %d holes scored", played, matchscore.HolesPerRound),
			})
		}
	}

	standings := make([]PlayerStanding, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if row.RoundsPlayed > 0 {
			row.AverageNetScore = roundTo1(float64(row.TotalNetScore) / float64(row.RoundsPlayed))
		}
		standings = append(standings, *row)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		aPlayed, bPlayed := a.RoundsPlayed > 0, b.RoundsPlayed > 0
		if aPlayed != bPlayed {
			return aPlayed
		}
		if a.TotalNetScore != b.TotalNetScore {
			return a.TotalNetScore < b.TotalNetScore
		}
		if a.RoundsPlayed != b.RoundsPlayed {
			return a.RoundsPlayed > b.RoundsPlayed
		}
		an, bn := strings.ToLower(a.PlayerName), strings.ToLower(b.PlayerName)
		if an != bn {
			return an < bn
		}
		return a.PlayerID < b.PlayerID
	})
	for i := range standings {
		standings[i].Position = i + 1
	}

	return PlayerResult{Standings: standings, Warnings: warnings}
}
