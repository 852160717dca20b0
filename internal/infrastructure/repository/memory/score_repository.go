package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
)

// ScoreRepository filters scores by the status of their match, so it needs the
// match store it was seeded alongside.
type ScoreRepository struct {
	mu      sync.RWMutex
	scores  []matchscore.Score
	matches match.Repository
}

func NewScoreRepository(scores []matchscore.Score, matches match.Repository) *ScoreRepository {
	return &ScoreRepository{
		scores:  append([]matchscore.Score(nil), scores...),
		matches: matches,
	}
}

func (r *ScoreRepository) ListForDecidedMatches(ctx context.Context) ([]matchscore.Score, error) {
	decided, err := r.matches.ListDecided(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(decided))
	for _, item := range decided {
		ids[item.ID] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchscore.Score, 0, len(r.scores))
	for _, item := range r.scores {
		if _, ok := ids[item.MatchID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
