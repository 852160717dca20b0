package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
)

type PointsRepository struct {
	mu      sync.RWMutex
	byMatch map[string][]matchpoints.Points
}

func NewPointsRepository(points []matchpoints.Points) *PointsRepository {
	byMatch := make(map[string][]matchpoints.Points)
	for _, item := range points {
		byMatch[item.MatchID] = append(byMatch[item.MatchID], item)
	}
	return &PointsRepository{byMatch: byMatch}
}

func (r *PointsRepository) GetAggregate(_ context.Context, matchID string) (matchpoints.Points, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out, ok := matchpoints.Canonical(r.byMatch[strings.TrimSpace(matchID)])
	return out, ok, nil
}

func (r *PointsRepository) ListAggregates(_ context.Context, matchIDs []string) ([]matchpoints.Points, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchpoints.Points, 0, len(matchIDs))
	for _, id := range matchIDs {
		for _, item := range r.byMatch[id] {
			if item.IsAggregate() {
				out = append(out, item)
			}
		}
	}
	return out, nil
}
