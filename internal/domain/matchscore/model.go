package matchscore

import "time"

const HolesPerRound = 9

// Score is the stroke count of one player on one hole of one match.
type Score struct {
	ID        int64
	MatchID   string
	PlayerID  string
	Hole      int
	Strokes   int
	UpdatedAt time.Time
}

func (s Score) HasValidHole() bool {
	return s.Hole >= 1 && s.Hole <= HolesPerRound
}
