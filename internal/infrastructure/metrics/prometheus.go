// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "searchy"

var (
	// CacheOperationsTotal tracks response cache lookups per operation.
	// Labels:
	//   - operation: search, video, audio
	//   - status: hit, miss, bypass
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of response cache lookups",
		},
		[]string{"operation", "status"},
	)

	// ExtractionsTotal tracks upstream yt-dlp extractions.
	// Labels:
	//   - operation: search, video, audio
	//   - status: success, error
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Total number of upstream metadata extractions",
		},
		[]string{"operation", "status"},
	)
)

// RegisterCacheSize exposes the live cache entry count as a gauge. The count
// includes entries that are expired but not yet evicted.
func RegisterCacheSize(size func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Current number of response cache entries",
		},
		func() float64 { return float64(size()) },
	)
}

// Cache lookup status constants.
const (
	CacheStatusHit    = "hit"
	CacheStatusMiss   = "miss"
	CacheStatusBypass = "bypass"
)

// Operation constants shared by cache and extraction metrics.
const (
	OpSearch = "search"
	OpVideo  = "video"
	OpAudio  = "audio"
)

// Extraction status constants.
const (
	ExtractionStatusSuccess = "success"
	ExtractionStatusError   = "error"
)
