package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sightstory_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sightstory_logins_total",
			Help: "Total number of login attempts by outcome.",
		},
		[]string{"status"},
	)

	refreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sightstory_token_refreshes_total",
		Help: "Total number of successful token refreshes.",
	})

	storiesComposedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sightstory_stories_composed_total",
		Help: "Total number of composed stories.",
	})

	storyCoverage = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sightstory_story_coverage_percent",
		Help:    "Share of target words covered by composed stories.",
		Buckets: prometheus.LinearBuckets(10, 10, 10), // 10, 20, ..., 100
	})

	targetWordsRequested = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sightstory_target_words_requested",
		Help:    "Distinct target words per compose request.",
		Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
	})

	storiesSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sightstory_stories_saved_total",
		Help: "Total number of saved stories.",
	})

	storiesSharedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sightstory_story_shares_total",
			Help: "Total number of share requests by outcome.",
		},
		[]string{"status"},
	)
)
