package memory

import (
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
)

const (
	TeamIDEagles   = "team-eagles"
	TeamIDBirdies  = "team-birdies"
	TeamIDAlbatros = "team-albatros"
	TeamIDBogeys   = "team-bogeys"
)

var seedUpdatedAt = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDEagles, Name: "Eagles"},
		{ID: TeamIDBirdies, Name: "Birdies"},
		{ID: TeamIDAlbatros, Name: "Albatros"},
		{ID: TeamIDBogeys, Name: "Bogeys"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "plr-eagles-1", TeamID: TeamIDEagles, Name: "Hana Park", HandicapIndex: 8.4, Type: player.TypePrimary},
		{ID: "plr-eagles-2", TeamID: TeamIDEagles, Name: "Dimas Putra", HandicapIndex: 14.2, Type: player.TypePrimary},
		{ID: "plr-birdies-1", TeamID: TeamIDBirdies, Name: "Laura Chen", HandicapIndex: 6.1, Type: player.TypePrimary},
		{ID: "plr-birdies-2", TeamID: TeamIDBirdies, Name: "Omar Haddad", HandicapIndex: 18.7, Type: player.TypePrimary},
		{ID: "plr-albatros-1", TeamID: TeamIDAlbatros, Name: "Sekar Ayu", HandicapIndex: 11.0, Type: player.TypePrimary},
		{ID: "plr-albatros-2", TeamID: TeamIDAlbatros, Name: "Tom Becker", HandicapIndex: 21.3, Type: player.TypePrimary},
		{ID: "plr-bogeys-1", TeamID: TeamIDBogeys, Name: "Rina Wijaya", HandicapIndex: 9.8, Type: player.TypePrimary},
		{ID: "plr-bogeys-2", TeamID: TeamIDBogeys, Name: "Marco Rossi", HandicapIndex: 16.5, Type: player.TypePrimary},
		{ID: "plr-sub-1", TeamID: TeamIDEagles, Name: "Adi Nugroho", HandicapIndex: 24.0, Type: player.TypeSubstitute},
		{ID: "plr-sub-2", TeamID: TeamIDBogeys, Name: "Grace Lim", HandicapIndex: 19.2, Type: player.TypeSubstitute},
	}
}

func SeedMatches() []match.Match {
	week := func(n int) time.Time {
		return time.Date(2026, 4, 7, 17, 30, 0, 0, time.UTC).AddDate(0, 0, 7*(n-1))
	}
	return []match.Match{
		{ID: "match-w1-1", Date: week(1), WeekNumber: 1, HomeTeamID: TeamIDEagles, AwayTeamID: TeamIDBirdies, StartingHole: 1, Status: match.StatusFinalized},
		{ID: "match-w1-2", Date: week(1), WeekNumber: 1, HomeTeamID: TeamIDAlbatros, AwayTeamID: TeamIDBogeys, StartingHole: 10, Status: match.StatusFinalized},
		{ID: "match-w2-1", Date: week(2), WeekNumber: 2, HomeTeamID: TeamIDEagles, AwayTeamID: TeamIDAlbatros, StartingHole: 1, Status: match.StatusCompleted},
		{ID: "match-w2-2", Date: week(2), WeekNumber: 2, HomeTeamID: TeamIDBirdies, AwayTeamID: TeamIDBogeys, StartingHole: 10, Status: match.StatusCompleted},
		{ID: "match-w3-1", Date: week(3), WeekNumber: 3, HomeTeamID: TeamIDEagles, AwayTeamID: TeamIDBogeys, StartingHole: 1, Status: match.StatusScheduled},
		{ID: "match-w3-2", Date: week(3), WeekNumber: 3, HomeTeamID: TeamIDBirdies, AwayTeamID: TeamIDAlbatros, StartingHole: 10, Status: match.StatusScheduled},
	}
}

func SeedPoints() []matchpoints.Points {
	return []matchpoints.Points{
		{ID: 1, MatchID: "match-w1-1", TeamID: TeamIDEagles, HomePoints: 6.5, AwayPoints: 3.5, UpdatedAt: seedUpdatedAt},
		{ID: 2, MatchID: "match-w1-2", TeamID: TeamIDAlbatros, HomePoints: 5, AwayPoints: 5, UpdatedAt: seedUpdatedAt},
		{ID: 3, MatchID: "match-w2-1", TeamID: TeamIDEagles, HomePoints: 4, AwayPoints: 6, UpdatedAt: seedUpdatedAt},
		{ID: 4, MatchID: "match-w2-2", TeamID: TeamIDBirdies, HomePoints: 7, AwayPoints: 3, UpdatedAt: seedUpdatedAt},
	}
}

// SeedScores produces a full nine-hole round for every primary player of
// each decided match.
func SeedScores() []matchscore.Score {
	rosters := make(map[string][]player.Player)
	for _, p := range SeedPlayers() {
		if p.IsPrimary() {
			rosters[p.TeamID] = append(rosters[p.TeamID], p)
		}
	}

	out := make([]matchscore.Score, 0)
	var nextID int64 = 1
	for mi, m := range SeedMatches() {
		if !m.IsDecided() {
			continue
		}
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			for pi, p := range rosters[teamID] {
				base := 4 + int(p.HandicapIndex)/10
				for hole := 1; hole <= matchscore.HolesPerRound; hole++ {
					out = append(out, matchscore.Score{
						ID:        nextID,
						MatchID:   m.ID,
						PlayerID:  p.ID,
						Hole:      hole,
						Strokes:   base + (hole+mi+pi)%3 - 1,
						UpdatedAt: seedUpdatedAt,
					})
					nextID++
				}
			}
		}
	}
	return out
}
