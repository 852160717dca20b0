package standing

import "math"

// WarningKind classifies a data-quality anomaly found while folding standings.
type WarningKind string

const (
	WarningMissingAggregatePoints   WarningKind = "MISSING_AGGREGATE_POINTS"
	WarningDuplicateAggregatePoints WarningKind = "DUPLICATE_AGGREGATE_POINTS"
	WarningUnexpectedPointTotal     WarningKind = "UNEXPECTED_POINT_TOTAL"
	WarningUnknownTeam              WarningKind = "UNKNOWN_TEAM"
	WarningUndecidedMatch           WarningKind = "UNDECIDED_MATCH"
	WarningPartialRound             WarningKind = "PARTIAL_ROUND"
	WarningDuplicateHoleScore       WarningKind = "DUPLICATE_HOLE_SCORE"
	WarningInvalidHoleScore         WarningKind = "INVALID_HOLE_SCORE"
	WarningUnknownPlayer            WarningKind = "UNKNOWN_PLAYER"
)

// Warning is surfaced to callers instead of guessing a fix for bad data.
type Warning struct {
	Kind     WarningKind
	MatchID  string
	TeamID   string
	PlayerID string
	Message  string
}

// CountByKind tallies warnings per kind.
func CountByKind(warnings []Warning) map[WarningKind]int {
	out := make(map[WarningKind]int, len(warnings))
	for _, w := range warnings {
		out[w.Kind]++
	}
	return out
}

func roundTo1(value float64) float64 {
	return math.Round(value*10) / 10
}
