package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func gatheredValue(t *testing.T, reg *prometheus.Registry, name, labelValue string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetValue() != labelValue {
					continue
				}
				switch {
				case m.GetCounter() != nil:
					return m.GetCounter().GetValue()
				case m.GetGauge() != nil:
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{%s} not found", name, labelValue)
	return 0
}

func TestService_RecordsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.ObserveComputation(KindTeams, 20*time.Millisecond)
	svc.ObserveComputation(KindTeams, 10*time.Millisecond)
	svc.IncFailure(KindPlayers)
	svc.AddWarnings("PARTIAL_ROUND", 3)
	svc.AddWarnings("PARTIAL_ROUND", 0)
	svc.SetCircuitState("matches", true)

	if got := gatheredValue(t, reg, "golf_standings_computations_total", KindTeams); got != 2 {
		t.Fatalf("computations=%v want=2", got)
	}
	if got := gatheredValue(t, reg, "golf_standings_failures_total", KindPlayers); got != 1 {
		t.Fatalf("failures=%v want=1", got)
	}
	if got := gatheredValue(t, reg, "golf_standings_data_quality_warnings_total", "PARTIAL_ROUND"); got != 3 {
		t.Fatalf("warnings=%v want=3", got)
	}
	if got := gatheredValue(t, reg, "golf_store_circuit_open", "matches"); got != 1 {
		t.Fatalf("circuit gauge=%v want=1", got)
	}
}

func TestNewHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.ObserveComputation(KindPlayers, time.Millisecond)

	rec := httptest.NewRecorder()
	NewHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `golf_standings_computations_total{kind="players"} 1`) {
		t.Fatalf("metrics output missing counter:\n%s", body)
	}
}

func TestRegisterCacheStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	stats := CacheStats{Entries: 2, Hits: 7, Misses: 3}
	if err := RegisterCacheStats(reg, "roster", func() CacheStats { return stats }); err != nil {
		t.Fatalf("register: %v", err)
	}

	if got := gatheredValue(t, reg, "golf_cache_entries", "roster"); got != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
	if got := gatheredValue(t, reg, "golf_cache_hits_total", "roster"); got != 7 {
		t.Fatalf("expected 7 hits, got %v", got)
	}

	stats.Misses = 5
	if got := gatheredValue(t, reg, "golf_cache_misses_total", "roster"); got != 5 {
		t.Fatalf("expected misses to be read at scrape time, got %v", got)
	}

	if err := RegisterCacheStats(reg, "roster", func() CacheStats { return stats }); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}
