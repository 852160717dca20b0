package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

type PointsRepository struct {
	db *sqlx.DB
}

func NewPointsRepository(db *sqlx.DB) *PointsRepository {
	return &PointsRepository{db: db}
}

func (r *PointsRepository) GetAggregate(ctx context.Context, matchID string) (matchpoints.Points, bool, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return matchpoints.Points{}, false, nil
	}

	rows, err := r.ListAggregates(ctx, []string{matchID})
	if err != nil {
		return matchpoints.Points{}, false, err
	}
	out, ok := matchpoints.Canonical(rows)
	return out, ok, nil
}

func (r *PointsRepository) ListAggregates(ctx context.Context, matchIDs []string) ([]matchpoints.Points, error) {
	if len(matchIDs) == 0 {
		return []matchpoints.Points{}, nil
	}

	query, args, err := qb.Select("id", "match_public_id", "team_public_id", "hole", "home_points", "away_points", "created_at", "updated_at").
		From("match_points").
		Where(
			qb.AnyOf("match_public_id", matchIDs),
			qb.IsNull("hole"),
		).
		OrderBy("match_public_id", "updated_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match points query: %w", err)
	}

	var rows []matchPointsTableModel
	if err := selectWithRetry(ctx, r.db, &rows, query, args...); err != nil {
		if isNotFound(err) {
			return []matchpoints.Points{}, nil
		}
		return nil, fmt.Errorf("select match points: %w", err)
	}

	out := make([]matchpoints.Points, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchpoints.Points{
			ID:         row.ID,
			MatchID:    row.MatchID,
			TeamID:     row.TeamID,
			Hole:       nullIntToPtr(row.Hole),
			HomePoints: row.HomePoints,
			AwayPoints: row.AwayPoints,
			UpdatedAt:  row.UpdatedAt,
		})
	}

	return out, nil
}
