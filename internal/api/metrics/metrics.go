// Package metrics defines the custom Prometheus metrics of the blog API. It
// is the single source of truth for metric names, labels and help strings.
//
// Metrics register with the default registry on package init and are served
// at /metrics next to the echoprometheus HTTP metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lumina"

// ── Generation metrics ───────────────────────────────────────────────────────

// GenerationCallsTotal counts drafting stage outcomes.
// Labels:
//   - stage: "outline", "draft", "cover_image" or "compose"
//   - outcome: "ok", "fallback" (parse anomaly recovered) or "error"
var GenerationCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_calls_total",
		Help:      "Total number of drafting stage calls, by stage and outcome.",
	},
	[]string{"stage", "outcome"},
)

// GenerationDuration measures how long one drafting stage takes, model
// round trip included.
var GenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of drafting stage calls.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 40},
	},
	[]string{"stage"},
)

// ObserveGeneration records one stage call.
func ObserveGeneration(stage, outcome string, started time.Time) {
	GenerationCallsTotal.WithLabelValues(stage, outcome).Inc()
	GenerationDuration.WithLabelValues(stage).Observe(time.Since(started).Seconds())
}

// ── Content metrics ──────────────────────────────────────────────────────────

// PostsPublishedTotal counts published posts.
// Label:
//   - category: the post category
var PostsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_published_total",
		Help:      "Total number of posts published, by category.",
	},
	[]string{"category"},
)

var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted.",
	},
)

var CommentsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_added_total",
		Help:      "Total number of comments added.",
	},
)

// ── Auth metrics ─────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-in and registration attempts.
// Labels:
//   - action: "register", "login" or "admin_login"
//   - outcome: "ok", "invalid", "denied" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and outcome.",
	},
	[]string{"action", "outcome"},
)
