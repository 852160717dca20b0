package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/domain/handicap"
	cacherepo "github.com/riskibarqy/golf-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/golf-league/internal/metrics"
	"github.com/riskibarqy/golf-league/internal/platform/cache"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "golf-league-api",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		StoreBackend:       config.StoreBackendMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		Course:             handicap.DefaultCourse(),
		AllowedPointTotals: []float64{9, 10},
		MetricsEnabled:     true,
	}
}

func TestNewHTTPServer_MemoryBackend(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer func() { _ = cleanup() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings/teams", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics endpoint, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "golf_standings_computations_total") {
		t.Fatalf("expected standings counter in metrics output")
	}
	if !strings.Contains(rec.Body.String(), `golf_cache_misses_total{cache="roster"}`) {
		t.Fatalf("expected roster cache miss in metrics output, got %s", rec.Body.String())
	}
}

func TestNewHTTPServer_MetricsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.MetricsEnabled = false

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer func() { _ = cleanup() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without metrics, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestBuildRepositories_UnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreBackend = "sqlite"

	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestBuildRepositories_StandingsBypassRosterCache(t *testing.T) {
	repos, closeStore, err := buildRepositories(context.Background(), memoryConfig(), cache.NewStore(time.Minute), metrics.Noop{}, logging.NewNop())
	if err != nil {
		t.Fatalf("buildRepositories: %v", err)
	}
	defer func() { _ = closeStore() }()

	if _, cached := repos.Standing.Teams.(*cacherepo.TeamRepository); cached {
		t.Fatalf("standings team reads must not go through the roster cache")
	}
	if _, cached := repos.Standing.Players.(*cacherepo.PlayerRepository); cached {
		t.Fatalf("standings player reads must not go through the roster cache")
	}
	if _, cached := repos.RosterTeams.(*cacherepo.TeamRepository); !cached {
		t.Fatalf("expected roster team reads to be cached, got %T", repos.RosterTeams)
	}
	if _, cached := repos.RosterPlayers.(*cacherepo.PlayerRepository); !cached {
		t.Fatalf("expected roster player reads to be cached, got %T", repos.RosterPlayers)
	}
}

func TestBuildRepositories_NoCacheSharesRepositories(t *testing.T) {
	repos, _, err := buildRepositories(context.Background(), memoryConfig(), nil, metrics.Noop{}, logging.NewNop())
	if err != nil {
		t.Fatalf("buildRepositories: %v", err)
	}
	if repos.RosterTeams != repos.Standing.Teams || repos.RosterPlayers != repos.Standing.Players {
		t.Fatalf("expected roster endpoints to use the store repositories when cache is off")
	}
}
