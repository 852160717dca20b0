package resilient

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/metrics"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
)

// Breakers hands out one circuit breaker per repository, all sharing the same
// config and state-change reporting.
type Breakers struct {
	cfg      resilience.CircuitBreakerConfig
	recorder metrics.Recorder
	logger   *logging.Logger
}

func NewBreakers(cfg resilience.CircuitBreakerConfig, recorder metrics.Recorder, logger *logging.Logger) *Breakers {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Breakers{cfg: cfg, recorder: recorder, logger: logger}
}

// For returns nil when breakers are disabled; resilience.Call passes through on
// a nil breaker.
func (b *Breakers) For(name string) *resilience.CircuitBreaker {
	if b == nil || !b.cfg.Enabled {
		return nil
	}
	b.recorder.SetCircuitState(name, false)
	return resilience.NewCircuitBreaker(name, b.cfg, b.onStateChange)
}

func (b *Breakers) onStateChange(name string, from, to resilience.CircuitState) {
	b.recorder.SetCircuitState(name, to == resilience.CircuitStateOpen)
	b.logger.WarnContext(context.Background(), "store circuit breaker state changed",
		"repository", name,
		"from", string(from),
		"to", string(to),
	)
}
