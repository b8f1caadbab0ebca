package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal counts REST requests by route pattern, method and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of http requests handled by the service.",
		},
		[]string{"path", "method", "code"},
	)

	// GrpcRequestsTotal counts gRPC calls by full method and status code.
	GrpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grpc_requests_total",
			Help: "Total number of gRPC requests handled by the service.",
		},
		[]string{"method", "code"},
	)

	// QueueLength is the number of jobs waiting for a worker.
	QueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "imagegen_queue_length",
			Help: "Number of pending jobs in the dispatch queue.",
		},
	)

	// QueueRejectionsTotal counts admissions rejected because the queue was full.
	QueueRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "imagegen_queue_rejections_total",
			Help: "Total number of jobs rejected because the queue was at capacity.",
		},
	)

	// JobsProcessedTotal counts jobs finished by workers, by outcome
	// (completed, failed, invalid, panicked).
	JobsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imagegen_jobs_processed_total",
			Help: "Total number of jobs processed by workers.",
		},
		[]string{"status"},
	)

	// GenerationDuration observes generator call latency.
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "imagegen_generation_seconds",
			Help:    "Time spent inside the generator per job.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)

	// StatusEntriesEvictedTotal counts terminal status entries removed by retention.
	StatusEntriesEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "imagegen_status_entries_evicted_total",
			Help: "Total number of terminal job status entries evicted by retention.",
		},
	)
)
