package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/domain/standing"
	"github.com/riskibarqy/golf-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/golf-league/internal/metrics"
	"github.com/riskibarqy/golf-league/internal/platform/cache"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// NewHTTPServer builds the full dependency graph. The returned cleanup closes
// the store handle and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var rosterCache *cache.Store
	if cfg.CacheEnabled {
		rosterCache = cache.NewStore(cfg.CacheTTL)
	}

	var (
		recorder       metrics.Recorder = metrics.Noop{}
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if rosterCache != nil {
			if err := metrics.RegisterCacheStats(registry, "roster", func() metrics.CacheStats {
				st := rosterCache.Stats()
				return metrics.CacheStats{Entries: st.Entries, Hits: st.Hits, Misses: st.Misses}
			}); err != nil {
				return nil, nil, fmt.Errorf("register cache metrics: %w", err)
			}
		}
		recorder = metrics.NewService(registry)
		metricsHandler = metrics.NewHandler(registry)
	}

	repos, closeStore, err := buildRepositories(ctx, cfg, rosterCache, recorder, logger)
	if err != nil {
		return nil, nil, err
	}

	policy := standing.Policy{AllowedPointTotals: cfg.AllowedPointTotals}
	standingSvc := usecase.NewStandingService(repos.Standing, cfg.Course, policy, recorder, logger)
	leagueSvc := usecase.NewLeagueService(repos.RosterTeams, repos.RosterPlayers)
	matchSvc := usecase.NewMatchService(repos.Standing.Matches, repos.Standing.Points)

	handler := httpapi.NewHandler(standingSvc, leagueSvc, matchSvc, logger)
	router := httpapi.NewRouter(handler, metricsHandler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("app wired",
		"store_backend", cfg.StoreBackend,
		"cache_enabled", cfg.CacheEnabled,
		"circuit_enabled", cfg.DBCircuitEnabled,
		"metrics_enabled", cfg.MetricsEnabled,
	)
	return server, closeStore, nil
}
