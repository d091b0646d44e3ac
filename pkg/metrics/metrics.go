package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_queries_total",
			Help: "Total number of chat queries by intent and outcome",
		},
		[]string{"intent", "outcome"},
	)

	ChatQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_query_duration_seconds",
			Help:    "Duration of chat query resolution in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"intent"},
	)

	ChatAnswerCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_answer_cache_total",
			Help: "Answer cache lookups by result",
		},
		[]string{"result"},
	)

	DatasetTableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_table_rows",
			Help: "Number of rows loaded per dataset table",
		},
		[]string{"table"},
	)

	DatasetLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_load_failures_total",
			Help: "Number of dataset tables that failed to load",
		},
		[]string{"table"},
	)
)
