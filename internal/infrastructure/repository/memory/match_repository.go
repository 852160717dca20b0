package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/golf-league/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := append([]match.Match(nil), matches...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].WeekNumber != items[j].WeekNumber {
			return items[i].WeekNumber < items[j].WeekNumber
		}
		return items[i].Date.Before(items[j].Date)
	})
	return &MatchRepository{matches: items}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.WeekNumber > 0 && item.WeekNumber != filter.WeekNumber {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchRepository) ListDecided(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if item.IsDecided() {
			out = append(out, item)
		}
	}
	return out, nil
}
