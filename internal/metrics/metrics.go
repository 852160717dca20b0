package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	KindTeams       = "teams"
	KindPlayers     = "players"
	KindDataQuality = "data_quality"
)

// Recorder is what the standings use case reports to.
type Recorder interface {
	ObserveComputation(kind string, duration time.Duration)
	IncFailure(kind string)
	AddWarnings(kind string, count int)
	SetCircuitState(name string, open bool)
}

var _ Recorder = (*Service)(nil)

type Service struct {
	Computations    *prometheus.CounterVec
	ComputeDuration *prometheus.HistogramVec
	Warnings        *prometheus.CounterVec
	Failures        *prometheus.CounterVec
	CircuitOpen     *prometheus.GaugeVec
}

// NewService creates and registers the collectors. Without a registerer the
// default Prometheus registerer is used.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_standings_computations_total",
			Help: "Standings computations that completed, by kind.",
		}, []string{"kind"}),
		ComputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "golf_standings_compute_duration_seconds",
			Help:    "Time spent reading and folding standings, by kind.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),
		Warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_standings_data_quality_warnings_total",
			Help: "Data-quality warnings raised while folding standings, by warning kind.",
		}, []string{"kind"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_standings_failures_total",
			Help: "Standings requests that failed on a store read, by kind.",
		}, []string{"kind"}),
		CircuitOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "golf_store_circuit_open",
			Help: "1 while the store circuit breaker of a repository is open.",
		}, []string{"repository"}),
	}

	reg.MustRegister(s.Computations, s.ComputeDuration, s.Warnings, s.Failures, s.CircuitOpen)
	return s
}

// NewHandler serves the given gatherer, or the default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

func (s *Service) ObserveComputation(kind string, duration time.Duration) {
	s.Computations.WithLabelValues(kind).Inc()
	s.ComputeDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (s *Service) IncFailure(kind string) {
	s.Failures.WithLabelValues(kind).Inc()
}

func (s *Service) AddWarnings(kind string, count int) {
	if count <= 0 {
		return
	}
	s.Warnings.WithLabelValues(kind).Add(float64(count))
}

func (s *Service) SetCircuitState(name string, open bool) {
	value := 0.0
	if open {
		value = 1
	}
	s.CircuitOpen.WithLabelValues(name).Set(value)
}

// Noop discards everything.
type Noop struct{}

func (Noop) ObserveComputation(string, time.Duration) {}
func (Noop) IncFailure(string)                        {}
func (Noop) AddWarnings(string, int)                  {}
func (Noop) SetCircuitState(string, bool)             {}
