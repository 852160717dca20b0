package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// ListForDecidedMatches returns raw hole rows, duplicates and out-of-range
// holes included, so the standings fold can report them.
func (r *ScoreRepository) ListForDecidedMatches(ctx context.Context) ([]matchscore.Score, error) {
	query, args, err := qb.Select(
		"s.id",
		"s.match_public_id",
		"s.player_public_id",
		"s.hole",
		"s.score",
		"s.updated_at",
		"m.status AS match_status",
	).From("match_scores s").
		Join("JOIN matches m ON m.public_id = s.match_public_id AND m.deleted_at IS NULL").
		OrderBy("s.match_public_id", "s.player_public_id", "s.hole", "s.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match scores query: %w", err)
	}

	var rows []matchScoreRow
	if err := selectWithRetry(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match scores: %w", err)
	}

	out := make([]matchscore.Score, 0, len(rows))
	for _, row := range rows {
		status, err := match.ParseStatus(row.MatchStatus)
		if err != nil {
			return nil, fmt.Errorf("decode match %s: %w", row.MatchID, err)
		}
		if !status.IsDecided() {
			continue
		}
		out = append(out, matchscore.Score{
			ID:        row.ID,
			MatchID:   row.MatchID,
			PlayerID:  row.PlayerID,
			Hole:      row.Hole,
			Strokes:   row.Score,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return out, nil
}
