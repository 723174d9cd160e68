// Package metrics holds the Prometheus instruments for puzzle generation,
// verification and decomposition.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// puzzlesGenerated counts puzzles emitted by level
	puzzlesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anagram_puzzles_generated_total",
		Help: "Puzzles generated by difficulty level",
	}, []string{"level"})

	// puzzlesSkipped counts puzzles dropped after exhausting their attempts
	puzzlesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anagram_puzzles_skipped_total",
		Help: "Puzzles skipped after exhausting generation attempts, by difficulty level",
	}, []string{"level"})

	// verifications counts verifier outcomes by reason ("ok" on success)
	verifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anagram_verifications_total",
		Help: "Submission verifications by outcome",
	}, []string{"outcome"})

	// decomposeDuration tracks decomposition latency
	decomposeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "anagram_decompose_duration_seconds",
		Help:    "Multi-word decomposition duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)

// PuzzleGenerated records one emitted puzzle.
func PuzzleGenerated(level int) { puzzlesGenerated.WithLabelValues(strconv.Itoa(level)).Inc() }

// PuzzleSkipped records one puzzle dropped by the generator.
func PuzzleSkipped(level int) { puzzlesSkipped.WithLabelValues(strconv.Itoa(level)).Inc() }

// Verified records a verification outcome. An empty reason means success.
func Verified(reason string) {
	if reason == "" {
		reason = "ok"
	}
	verifications.WithLabelValues(reason).Inc()
}

// DecomposeObserved records a decomposition duration in seconds.
func DecomposeObserved(seconds float64) { decomposeDuration.Observe(seconds) }
