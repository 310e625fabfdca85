// Package metrics keeps process-local counters and renders them in Prometheus text format.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	evaluationsStarted   atomic.Uint64
	evaluationsCompleted atomic.Uint64
	evaluationsFailed    atomic.Uint64
	simulationsTotal     atomic.Uint64
	comparisonsTotal     atomic.Uint64
	cacheHits            atomic.Uint64
	cacheMisses          atomic.Uint64

	evaluationDuration = newHistogram([]float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000})
)

func IncEvaluationStarted()   { evaluationsStarted.Add(1) }
func IncEvaluationCompleted() { evaluationsCompleted.Add(1) }
func IncEvaluationFailed()    { evaluationsFailed.Add(1) }
func IncSimulation()          { simulationsTotal.Add(1) }
func IncComparison()          { comparisonsTotal.Add(1) }
func IncCacheHit()            { cacheHits.Add(1) }
func IncCacheMiss()           { cacheMisses.Add(1) }

// ObserveEvaluationDuration records how long an evaluation took, including catalog lookups.
func ObserveEvaluationDuration(d time.Duration) {
	ms := float64(d.Microseconds()) / 1000.0
	if ms < 0 {
		ms = 0
	}
	evaluationDuration.Observe(ms)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "airscore_evaluations_started_total", "Total evaluations started", evaluationsStarted.Load())
	writeCounter(&buf, "airscore_evaluations_completed_total", "Total evaluations completed", evaluationsCompleted.Load())
	writeCounter(&buf, "airscore_evaluations_failed_total", "Total evaluations failed", evaluationsFailed.Load())
	writeCounter(&buf, "airscore_simulations_total", "Total pathway simulations", simulationsTotal.Load())
	writeCounter(&buf, "airscore_comparisons_total", "Total occupation comparisons", comparisonsTotal.Load())
	writeCounter(&buf, "airscore_cache_hits_total", "Evaluation cache hits", cacheHits.Load())
	writeCounter(&buf, "airscore_cache_misses_total", "Evaluation cache misses", cacheMisses.Load())
	writeHistogram(&buf, "airscore_evaluation_duration_ms", "Evaluation duration in milliseconds", evaluationDuration.snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe counts value in the first bucket whose bound contains it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
