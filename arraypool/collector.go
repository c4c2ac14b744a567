package arraypool

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StatsProvider is implemented by pools that expose activity counters.
type StatsProvider interface {
	Stats() Stats
}

// Collector exports the counters of one or more pools as Prometheus metrics.
// Each pool is labelled by the name it was registered under.
type Collector struct {
	pools   map[string]StatsProvider
	rents   *prometheus.Desc
	returns *prometheus.Desc
	misses  *prometheus.Desc
	drops   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector for pools, keyed by pool label.
func NewCollector(namespace string, pools map[string]StatsProvider) *Collector {
	labels := []string{"pool"}
	fq := func(name string) string {
		return prometheus.BuildFQName(namespace, "arraypool", name)
	}

	registered := make(map[string]StatsProvider, len(pools))
	for name, p := range pools {
		registered[name] = p
	}

	return &Collector{
		pools:   registered,
		rents:   prometheus.NewDesc(fq("rents_total"), "Number of non-empty rentals.", labels, nil),
		returns: prometheus.NewDesc(fq("returns_total"), "Number of non-empty returns.", labels, nil),
		misses:  prometheus.NewDesc(fq("misses_total"), "Rentals served by a fresh allocation.", labels, nil),
		drops:   prometheus.NewDesc(fq("drops_total"), "Returned slices discarded instead of pooled.", labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rents
	ch <- c.returns
	ch <- c.misses
	ch <- c.drops
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, p := range c.pools {
		s := p.Stats()
		ch <- prometheus.MustNewConstMetric(c.rents, prometheus.CounterValue, float64(s.Rents), name)
		ch <- prometheus.MustNewConstMetric(c.returns, prometheus.CounterValue, float64(s.Returns), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.drops, prometheus.CounterValue, float64(s.Drops), name)
	}
}
