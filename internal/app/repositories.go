package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	cacherepo "github.com/riskibarqy/golf-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/golf-league/internal/metrics"
	"github.com/riskibarqy/golf-league/internal/platform/cache"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// storeRepositories splits the standings reads from the roster endpoints.
// Standings always read the store so a roster edit shows in the next table;
// only the roster endpoints go through the cache.
type storeRepositories struct {
	Standing      usecase.StandingRepositories
	RosterTeams   team.Repository
	RosterPlayers player.Repository
}

// buildRepositories stacks store -> circuit breaker, then puts the roster
// cache in front of the roster endpoints only. The cache sits outermost so a
// hit never counts against the breaker.
func buildRepositories(ctx context.Context, cfg config.Config, rosterCache *cache.Store, recorder metrics.Recorder, logger *logging.Logger) (storeRepositories, func() error, error) {
	var (
		repos     usecase.StandingRepositories
		closeFunc = func() error { return nil }
	)

	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		matches := memory.NewMatchRepository(memory.SeedMatches())
		repos = usecase.StandingRepositories{
			Teams:   memory.NewTeamRepository(memory.SeedTeams()),
			Players: memory.NewPlayerRepository(memory.SeedPlayers()),
			Matches: matches,
			Scores:  memory.NewScoreRepository(memory.SeedScores(), matches),
			Points:  memory.NewPointsRepository(memory.SeedPoints()),
		}
	case config.StoreBackendPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return storeRepositories{}, nil, err
		}
		closeFunc = db.Close

		breakers := resilient.NewBreakers(resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		}, recorder, logger)
		repos = usecase.StandingRepositories{
			Teams:   resilient.NewTeamRepository(postgres.NewTeamRepository(db), breakers),
			Players: resilient.NewPlayerRepository(postgres.NewPlayerRepository(db), breakers),
			Matches: resilient.NewMatchRepository(postgres.NewMatchRepository(db), breakers),
			Scores:  resilient.NewScoreRepository(postgres.NewScoreRepository(db), breakers),
			Points:  resilient.NewPointsRepository(postgres.NewPointsRepository(db), breakers),
		}
	default:
		return storeRepositories{}, nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}

	out := storeRepositories{
		Standing:      repos,
		RosterTeams:   repos.Teams,
		RosterPlayers: repos.Players,
	}
	if rosterCache != nil {
		out.RosterTeams = cacherepo.NewTeamRepository(repos.Teams, rosterCache)
		out.RosterPlayers = cacherepo.NewPlayerRepository(repos.Players, rosterCache)
	}

	return out, closeFunc, nil
}
