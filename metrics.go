package main

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects search counters. A nil *Metrics records nothing.
type Metrics struct {
	searches prometheus.Counter
	nodes    prometheus.Counter
	pruned   *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the search metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geode_searches_total",
			Help: "Blueprint searches completed.",
		}),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geode_search_nodes_total",
			Help: "Search tree nodes visited across all searches.",
		}),
		pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geode_search_pruned_total",
			Help: "Branches cut short, by pruning rule.",
		}, []string{"rule"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "geode_search_duration_seconds",
			Help:    "Wall time of a single blueprint search.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.searches, m.nodes, m.pruned, m.duration)
	}
	return m
}

// Observe records one finished search.
func (m *Metrics) Observe(r SearchResult) {
	if m == nil {
		return
	}
	m.searches.Inc()
	m.nodes.Add(float64(r.Stats.Nodes))
	m.pruned.WithLabelValues("geode_bound").Add(float64(r.Stats.GeodeBoundCuts))
	m.pruned.WithLabelValues("obsidian_cutoff").Add(float64(r.Stats.ObsidianCuts))
	m.duration.Observe(r.Elapsed.Seconds())
}
