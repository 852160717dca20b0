package standing

import (
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/handicap"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
	"github.com/riskibarqy/golf-league/internal/domain/player"
)

// Rating equals par and slope is standard, so course handicap is index/2.
var flatCourse = handicap.Course{Rating: 36, Slope: 113, Par: 36, Holes: 9}

func primary(id, name string, index float64) player.Player {
	return player.Player{ID: id, TeamID: "t-a", Name: name, HandicapIndex: index, Type: player.TypePrimary}
}

func roundScores(matchID, playerID string, strokes ...int) []matchscore.Score {
	out := make([]matchscore.Score, 0, len(strokes))
	for i, s := range strokes {
		out = append(out, matchscore.Score{
			ID:       int64(i + 1),
			MatchID:  matchID,
			PlayerID: playerID,
			Hole:     i + 1,
			Strokes:  s,
		})
	}
	return out
}

func playerByID(t *testing.T, standings []PlayerStanding, id string) PlayerStanding {
	t.Helper()
	for _, s := range standings {
		if s.PlayerID == id {
			return s
		}
	}
	t.Fatalf("player %s missing from standings", id)
	return PlayerStanding{}
}

func TestComputePlayerStandings_FullRound(t *testing.T) {
	result := ComputePlayerStandings(PlayerInput{
		Players: []player.Player{primary("p1", "Ann", 10)},
		Matches: []match.Match{decidedMatch("m1", 1, "t-a", "t-b")},
		Scores:  roundScores("m1", "p1", 5, 4, 5, 6, 4, 5, 3, 5, 4),
	}, flatCourse)

	p := playerByID(t, result.Standings, "p1")
	if p.TotalGrossScore != 41 || p.CourseHandicap != 5 || p.TotalNetScore != 36 {
		t.Fatalf("unexpected totals: %+v", p)
	}
	if p.RoundsPlayed != 1 || p.MatchesPlayed != 1 || p.HolesPlayed != 9 || p.PartialRounds != 0 {
		t.Fatalf("unexpected counters: %+v", p)
	}
	if p.AverageNetScore != 36 {
		t.Fatalf("average net=%v want=36", p.AverageNetScore)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", result.Warnings)
	}
}

func TestComputePlayerStandings_PartialRoundSumsScoredHolesOnly(t *testing.T) {
	result := ComputePlayerStandings(PlayerInput{
		Players: []player.Player{primary("p1", "Ann", 18)},
		Matches: []match.Match{decidedMatch("m1", 1, "t-a", "t-b")},
		Scores:  roundScores("m1", "p1", 5, 4, 6, 5, 4),
	}, flatCourse)

	p := playerByID(t, result.Standings, "p1")
	if p.TotalGrossScore != 24 {
		t.Fatalf("gross=%d want=24", p.TotalGrossScore)
	}
	// course handicap 9 prorated to 5 holes is 5
	if p.TotalNetScore != 19 {
		t.Fatalf("net=%d want=19", p.TotalNetScore)
	}
	if p.RoundsPlayed != 1 || p.PartialRounds != 1 || p.HolesPlayed != 5 {
		t.Fatalf("unexpected counters: %+v", p)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Kind != WarningPartialRound {
		t.Fatalf("expected one partial round warning, got %+v", result.Warnings)
	}
}

func TestComputePlayerStandings_CompletenessAndPrimaryOnly(t *testing.T) {
	sub := player.Player{ID: "s1", TeamID: "t-a", Name: "Sub", Type: player.TypeSubstitute}
	result := ComputePlayerStandings(PlayerInput{
		Players: []player.Player{primary("p1", "Ann", 0), primary("p2", "Bob", 0), sub},
		Matches: []match.Match{decidedMatch("m1", 1, "t-a", "t-b")},
		Scores:  roundScores("m1", "p1", 4, 4, 4, 4, 4, 4, 4, 4, 4),
	}, flatCourse)

	if len(result.Standings) != 2 {
		t.Fatalf("expected 2 primary rows, got %+v", result.Standings)
	}
	if result.Standings[0].PlayerID != "p1" || result.Standings[1].PlayerID != "p2" {
		t.Fatalf("players with rounds should rank first: %+v", result.Standings)
	}
	bob := playerByID(t, result.Standings, "p2")
	if bob.RoundsPlayed != 0 || bob.TotalGrossScore != 0 || bob.AverageNetScore != 0 {
		t.Fatalf("expected zero row for Bob, got %+v", bob)
	}
}

func TestComputePlayerStandings_OrderingByNet(t *testing.T) {
	result := ComputePlayerStandings(PlayerInput{
		Players: []player.Player{primary("p1", "Ann", 0), primary("p2", "bea", 0), primary("p3", "Cal", 0)},
		Matches: []match.Match{decidedMatch("m1", 1, "t-a", "t-b")},
		Scores: append(append(
			roundScores("m1", "p1", 5, 5, 5, 5, 5, 5, 5, 5, 5),
			roundScores("m1", "p2", 4, 4, 4, 4, 4, 4, 4, 4, 4)...),
			roundScores("m1", "p3", 4, 4, 4, 4, 4, 4, 4, 4, 4)...),
	}, flatCourse)

	got := []string{}
	for _, row := range result.Standings {
		got = append(got, row.PlayerID)
	}
	want := []string{"p2", "p3", "p1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order=%v want=%v", got, want)
	}
}

func TestComputePlayerStandings_SkipsBadRows(t *testing.T) {
	base := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
	scores := roundScores("m1", "p1", 4, 4, 4, 4, 4, 4, 4, 4, 4)
	for i := range scores {
		scores[i].UpdatedAt = base
	}
	scores = append(scores,
		matchscore.Score{ID: 50, MatchID: "m1", PlayerID: "p1", Hole: 3, Strokes: 6, UpdatedAt: base.Add(time.Minute)},
		matchscore.Score{ID: 51, MatchID: "m1", PlayerID: "p1", Hole: 10, Strokes: 4},
		matchscore.Score{ID: 52, MatchID: "m1", PlayerID: "p1", Hole: 5, Strokes: 0},
		matchscore.Score{ID: 53, MatchID: "m1", PlayerID: "ghost", Hole: 1, Strokes: 4},
		matchscore.Score{ID: 54, MatchID: "m1", PlayerID: "ghost", Hole: 2, Strokes: 4},
		matchscore.Score{ID: 55, MatchID: "m9", PlayerID: "p1", Hole: 1, Strokes: 4},
	)

	result := ComputePlayerStandings(PlayerInput{
		Players: []player.Player{primary("p1", "Ann", 0)},
		Matches: []match.Match{decidedMatch("m1", 1, "t-a", "t-b")},
		Scores:  scores,
	}, flatCourse)

	p := playerByID(t, result.Standings, "p1")
	// hole 3 replaced by the later 6
	if p.TotalGrossScore != 38 || p.RoundsPlayed != 1 || p.HolesPlayed != 9 {
		t.Fatalf("unexpected row: %+v", p)
	}

	counts := CountByKind(result.Warnings)
	want := map[WarningKind]int{
		WarningDuplicateHoleScore: 1,
		WarningInvalidHoleScore:   2,
		WarningUnknownPlayer:      1,
		WarningUndecidedMatch:     1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("warning counts=%v want=%v", counts, want)
	}
}

func TestComputePlayerStandings_Idempotent(t *testing.T) {
	in := PlayerInput{
		Players: []player.Player{primary("p2", "Bob", 12.4), primary("p1", "Ann", 3.1)},
		Matches: []match.Match{decidedMatch("m1", 1, "t-a", "t-b"), decidedMatch("m2", 2, "t-a", "t-c")},
		Scores: append(
			roundScores("m2", "p2", 5, 6, 5, 4),
			roundScores("m1", "p1", 4, 5, 4, 4, 3, 5, 4, 4, 5)...),
	}

	first := ComputePlayerStandings(in, handicap.DefaultCourse())
	second := ComputePlayerStandings(in, handicap.DefaultCourse())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between runs")
	}
}
