package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.list(ctx, "")
}

func (r *PlayerRepository) ListPrimary(ctx context.Context) ([]player.Player, error) {
	return r.list(ctx, player.TypePrimary)
}

func (r *PlayerRepository) list(ctx context.Context, playerType player.Type) ([]player.Player, error) {
	var typeFilter qb.Condition
	if playerType != "" {
		typeFilter = qb.Eq("player_type", string(playerType))
	}

	query, args, err := qb.Select("*").From("players").
		Where(
			typeFilter,
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := selectWithRetry(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		kind, err := player.ParseType(row.PlayerType)
		if err != nil {
			return nil, fmt.Errorf("decode player %s: %w", row.PublicID, err)
		}
		out = append(out, player.Player{
			ID:            row.PublicID,
			TeamID:        row.TeamID,
			Name:          row.Name,
			HandicapIndex: row.HandicapIndex,
			Type:          kind,
		})
	}

	return out, nil
}
