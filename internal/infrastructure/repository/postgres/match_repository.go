package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// List returns matches ordered by week. The status filter is applied after
// decoding because stored values may use aliases.
func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	var weekFilter qb.Condition
	if filter.WeekNumber > 0 {
		weekFilter = qb.Eq("week_number", filter.WeekNumber)
	}

	query, args, err := qb.Select("*").From("matches").
		Where(
			weekFilter,
			qb.IsNull("deleted_at"),
		).
		OrderBy("week_number", "match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := selectWithRetry(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *MatchRepository) ListDecided(ctx context.Context) ([]match.Match, error) {
	items, err := r.List(ctx, match.Filter{})
	if err != nil {
		return nil, err
	}

	out := items[:0]
	for _, item := range items {
		if item.IsDecided() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m matchTableModel) toDomain() (match.Match, error) {
	status, err := match.ParseStatus(m.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("decode match %s: %w", m.PublicID, err)
	}
	return match.Match{
		ID:           m.PublicID,
		Date:         m.MatchDate,
		WeekNumber:   m.WeekNumber,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		StartingHole: m.StartingHole,
		Status:       status,
	}, nil
}
