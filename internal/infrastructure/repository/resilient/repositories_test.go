package resilient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/metrics"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
)

type failingTeamRepo struct {
	calls int
	err   error
}

func (r *failingTeamRepo) List(context.Context) ([]team.Team, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []team.Team{{ID: "t1", Name: "Eagles"}}, nil
}

type circuitRecorder struct {
	metrics.Noop
	mu     sync.Mutex
	states map[string]bool
}

func (r *circuitRecorder) SetCircuitState(name string, open bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.states == nil {
		r.states = make(map[string]bool)
	}
	r.states[name] = open
}

func (r *circuitRecorder) isOpen(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[name]
}

func TestTeamRepository_OpensAfterConsecutiveFailures(t *testing.T) {
	recorder := &circuitRecorder{}
	breakers := NewBreakers(resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}, recorder, logging.NewNop())

	next := &failingTeamRepo{err: errors.New("connection refused")}
	repo := NewTeamRepository(next, breakers)

	for i := 0; i < 2; i++ {
		if _, err := repo.List(context.Background()); err == nil {
			t.Fatalf("expected upstream error on call %d", i+1)
		}
	}
	if !recorder.isOpen("teams") {
		t.Fatalf("expected teams circuit to be reported open")
	}

	_, err := repo.List(context.Background())
	if !crerr.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("expected open breaker to skip upstream, got %d calls", next.calls)
	}
}

func TestTeamRepository_DisabledBreakerPassesThrough(t *testing.T) {
	breakers := NewBreakers(resilience.CircuitBreakerConfig{Enabled: false, FailureThreshold: 1}, nil, logging.NewNop())
	next := &failingTeamRepo{err: errors.New("timeout")}
	repo := NewTeamRepository(next, breakers)

	for i := 0; i < 5; i++ {
		_, err := repo.List(context.Background())
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			t.Fatalf("disabled breaker must never open")
		}
	}
	if next.calls != 5 {
		t.Fatalf("expected every call to reach upstream, got %d", next.calls)
	}
}

func TestTeamRepository_SuccessKeepsResult(t *testing.T) {
	breakers := NewBreakers(resilience.DefaultCircuitBreakerConfig(), nil, logging.NewNop())
	repo := NewTeamRepository(&failingTeamRepo{}, breakers)

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(items) != 1 || items[0].ID != "t1" {
		t.Fatalf("unexpected teams: %+v", items)
	}
}
