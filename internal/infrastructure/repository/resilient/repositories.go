package resilient

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
)

type TeamRepository struct {
	next    team.Repository
	breaker *resilience.CircuitBreaker
}

func NewTeamRepository(next team.Repository, breakers *Breakers) *TeamRepository {
	return &TeamRepository{next: next, breaker: breakers.For("teams")}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	out, err := resilience.Call(ctx, r.breaker, r.next.List)
	return out, wrap(err, "teams.list")
}

type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, breakers *Breakers) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breakers.For("players")}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	out, err := resilience.Call(ctx, r.breaker, r.next.List)
	return out, wrap(err, "players.list")
}

func (r *PlayerRepository) ListPrimary(ctx context.Context) ([]player.Player, error) {
	out, err := resilience.Call(ctx, r.breaker, r.next.ListPrimary)
	return out, wrap(err, "players.list_primary")
}

type MatchRepository struct {
	next    match.Repository
	breaker *resilience.CircuitBreaker
}

func NewMatchRepository(next match.Repository, breakers *Breakers) *MatchRepository {
	return &MatchRepository{next: next, breaker: breakers.For("matches")}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	out, err := resilience.Call(ctx, r.breaker, func(ctx context.Context) ([]match.Match, error) {
		return r.next.List(ctx, filter)
	})
	return out, wrap(err, "matches.list")
}

func (r *MatchRepository) ListDecided(ctx context.Context) ([]match.Match, error) {
	out, err := resilience.Call(ctx, r.breaker, r.next.ListDecided)
	return out, wrap(err, "matches.list_decided")
}

type ScoreRepository struct {
	next    matchscore.Repository
	breaker *resilience.CircuitBreaker
}

func NewScoreRepository(next matchscore.Repository, breakers *Breakers) *ScoreRepository {
	return &ScoreRepository{next: next, breaker: breakers.For("match_scores")}
}

func (r *ScoreRepository) ListForDecidedMatches(ctx context.Context) ([]matchscore.Score, error) {
	out, err := resilience.Call(ctx, r.breaker, r.next.ListForDecidedMatches)
	return out, wrap(err, "match_scores.list_for_decided")
}

type PointsRepository struct {
	next    matchpoints.Repository
	breaker *resilience.CircuitBreaker
}

func NewPointsRepository(next matchpoints.Repository, breakers *Breakers) *PointsRepository {
	return &PointsRepository{next: next, breaker: breakers.For("match_points")}
}

type aggregateLookup struct {
	points matchpoints.Points
	found  bool
}

func (r *PointsRepository) GetAggregate(ctx context.Context, matchID string) (matchpoints.Points, bool, error) {
	out, err := resilience.Call(ctx, r.breaker, func(ctx context.Context) (aggregateLookup, error) {
		points, found, err := r.next.GetAggregate(ctx, matchID)
		return aggregateLookup{points: points, found: found}, err
	})
	return out.points, out.found, wrap(err, "match_points.get_aggregate")
}

func (r *PointsRepository) ListAggregates(ctx context.Context, matchIDs []string) ([]matchpoints.Points, error) {
	out, err := resilience.Call(ctx, r.breaker, func(ctx context.Context) ([]matchpoints.Points, error) {
		return r.next.ListAggregates(ctx, matchIDs)
	})
	return out, wrap(err, "match_points.list_aggregates")
}

func wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return crerr.Wrap(err, op)
}
