package matchpoints

import "time"

// Points is one match_points row. A nil Hole marks the aggregate split for the
// whole match; per-hole rows only feed the scorecard view.
type Points struct {
	ID         int64
	MatchID    string
	TeamID     string
	Hole       *int
	HomePoints float64
	AwayPoints float64
	UpdatedAt  time.Time
}

func (p Points) IsAggregate() bool {
	return p.Hole == nil
}

func (p Points) Total() float64 {
	return p.HomePoints + p.AwayPoints
}

// Canonical picks the aggregate row that wins when a match has several:
// latest UpdatedAt first, then the greatest ID. Per-hole rows are ignored.
func Canonical(rows []Points) (Points, bool) {
	var (
		best  Points
		found bool
	)
	for _, row := range rows {
		if !row.IsAggregate() {
			continue
		}
		if !found || newer(row, best) {
			best = row
			found = true
		}
	}
	return best, found
}

func newer(a, b Points) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.ID > b.ID
}
