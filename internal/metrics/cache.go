package metrics

import "github.com/prometheus/client_golang/prometheus"

// CacheStats is read at scrape time, so the cache never pushes to Prometheus.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

type cacheCollector struct {
	name    string
	stats   func() CacheStats
	entries *prometheus.Desc
	hits    *prometheus.Desc
	misses  *prometheus.Desc
}

// RegisterCacheStats exposes a read-through cache as
// golf_cache_{entries,hits_total,misses_total}{cache=name}.
func RegisterCacheStats(reg prometheus.Registerer, name string, stats func() CacheStats) error {
	labels := prometheus.Labels{"cache": name}
	return reg.Register(&cacheCollector{
		name:    name,
		stats:   stats,
		entries: prometheus.NewDesc("golf_cache_entries", "Entries currently held by the cache.", nil, labels),
		hits:    prometheus.NewDesc("golf_cache_hits_total", "Reads served from the cache.", nil, labels),
		misses:  prometheus.NewDesc("golf_cache_misses_total", "Reads that went to the store.", nil, labels),
	})
}

func (c *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.hits
	ch <- c.misses
}

func (c *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(st.Entries))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(st.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(st.Misses))
}
