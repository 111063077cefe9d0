package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"healthai/internal/models"
)

var lookupDesc = prometheus.NewDesc(
	"healthai_lookups_total",
	"Total lookup count by operation, matched key and outcome",
	[]string{"operation", "key", "outcome"},
	nil,
)

// collectTimeout bounds the store read performed on each scrape.
const collectTimeout = 5 * time.Second

// Store persists lookup counters.
type Store interface {
	AddLookupCounts(ctx context.Context, deltas map[models.LookupKey]int64) error
	GetAllLookupStats(ctx context.Context) ([]models.LookupStat, error)
	Ping(ctx context.Context) error
}

// LookupCollector is a custom Prometheus collector that reads lookup counts
// from the store on each scrape.
type LookupCollector struct {
	store Store
}

// NewLookupCollector creates a collector backed by store.
func NewLookupCollector(store Store) *LookupCollector {
	return &LookupCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *LookupCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- lookupDesc
}

// Collect queries the store for all lookup counters and emits them.
func (c *LookupCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	stats, err := c.store.GetAllLookupStats(ctx)
	if err != nil {
		slog.Error("failed to collect lookup metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			lookupDesc,
			prometheus.CounterValue,
			float64(s.Count),
			s.Operation,
			s.Key,
			s.Outcome,
		)
	}
}

// NewRegistry returns a registry with the lookup collector and the standard
// Go and process collectors.
func NewRegistry(store Store) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewLookupCollector(store),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
