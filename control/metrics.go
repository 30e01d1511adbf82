// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus export of store accounting. Values are read from
// api.StatsSource at scrape time, so collection never touches store state
// other than its atomic counters.

package control

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-ringstore/api"
)

var _ prometheus.Collector = (*StoreCollector)(nil)

// StoreCollector exposes StoreStats of registered stores, labelled by store name.
type StoreCollector struct {
	mu      sync.RWMutex
	sources []api.StatsSource

	capacity  *prometheus.Desc
	live      *prometheus.Desc
	pushed    *prometheus.Desc
	dropped   *prometheus.Desc
	popped    *prometheus.Desc
	emptyPops *prometheus.Desc
}

// NewStoreCollector creates a collector under the given metric namespace.
func NewStoreCollector(namespace string, sources ...api.StatsSource) *StoreCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, []string{"store"}, nil)
	}
	return &StoreCollector{
		sources:   sources,
		capacity:  desc("capacity", "Fixed slot count of the store."),
		live:      desc("live_elements", "Elements currently held by the store."),
		pushed:    desc("pushed_total", "Elements accepted by push or emplace."),
		dropped:   desc("dropped_total", "Pushes rejected because the store was full or closed."),
		popped:    desc("popped_total", "Elements destroyed by pop, clear or close."),
		emptyPops: desc("empty_pops_total", "Pops issued against an empty store."),
	}
}

// Add registers another store.
func (c *StoreCollector) Add(src api.StatsSource) {
	c.mu.Lock()
	c.sources = append(c.sources, src)
	c.mu.Unlock()
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.live
	ch <- c.pushed
	ch <- c.dropped
	ch <- c.popped
	ch <- c.emptyPops
}

// Collect implements prometheus.Collector.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, src := range c.sources {
		s := src.Stats()
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity), s.Name)
		ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(s.Live), s.Name)
		ch <- prometheus.MustNewConstMetric(c.pushed, prometheus.CounterValue, float64(s.Pushed), s.Name)
		ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(s.Dropped), s.Name)
		ch <- prometheus.MustNewConstMetric(c.popped, prometheus.CounterValue, float64(s.Popped), s.Name)
		ch <- prometheus.MustNewConstMetric(c.emptyPops, prometheus.CounterValue, float64(s.EmptyPops), s.Name)
	}
}
