package cache

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	basecache "github.com/riskibarqy/golf-league/internal/platform/cache"
)

const (
	keyTeamList          = "team:list"
	keyPlayerList        = "player:list"
	keyPlayerListPrimary = "player:list:primary"
)

// Rosters change between seasons, not between requests, so they are the only
// reads served from cache.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, keyTeamList, func(ctx context.Context) ([]team.Team, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]team.Team(nil), items...), nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.load(ctx, keyPlayerList, r.next.List)
}

func (r *PlayerRepository) ListPrimary(ctx context.Context) ([]player.Player, error) {
	return r.load(ctx, keyPlayerListPrimary, r.next.ListPrimary)
}

func (r *PlayerRepository) load(ctx context.Context, key string, fetch func(context.Context) ([]player.Player, error)) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]player.Player, error) {
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}
