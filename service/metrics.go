// SPDX-License-Identifier: MIT

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of runsTotal.
const (
	outcomeOK       = "ok"
	outcomeCached   = "cached"
	outcomeBadInput = "bad_input"
	outcomeNoPair   = "no_pair"
	outcomeCanceled = "canceled"
	outcomeError    = "error"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wdiam_runs_total",
		Help: "Pipeline runs by outcome",
	}, []string{"outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wdiam_solve_duration_seconds",
		Help:    "All-pairs solve plus diameter extraction time",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	graphVertices = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wdiam_graph_vertices",
		Help:    "Vertex count of solved graphs",
		Buckets: []float64{2, 8, 32, 128, 512, 2048},
	})

	cacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wdiam_cache_entries",
		Help: "Outcomes currently held in the result cache",
	})
)
