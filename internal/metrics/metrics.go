package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "matchcore"

var (
	SwipesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "swipes_total",
		Help:      "Recorded swipe decisions.",
	}, []string{"decision"})

	MatchesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matches_created_total",
		Help:      "Matches created from reciprocal likes.",
	})

	QuotaExceeded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quota_exceeded_total",
		Help:      "Actions refused because the daily quota was used up.",
	})

	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Messages stored, by type.",
	}, []string{"type"})

	PublicMessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "public_messages_sent_total",
		Help:      "Messages posted to the public room.",
	})

	AlbumResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "album_access_responses_total",
		Help:      "Answered private album requests, by resulting state.",
	}, []string{"state"})

	PresenceCacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "presence_cache_errors_total",
		Help:      "Presence cache reads or writes that failed and fell back to the database.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
