package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeProcessed = "processed"
	outcomeSkipped   = "skipped"
	outcomeFailed    = "failed"

	artifactThumbnail = "thumbnail"
	artifactResized   = "resized"
	artifactMetadata  = "metadata"

	resultSucceeded = "succeeded"
	resultFailed    = "failed"
)

var (
	ingestRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videomania_ingest_runs_total",
		Help: "Number of ingest workflow runs, by outcome.",
	}, []string{"outcome"})

	ingestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "videomania_ingest_duration_seconds",
		Help:    "Time taken to run the ingest workflow for a single blob.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	ingestArtifacts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videomania_ingest_artifacts_total",
		Help: "Number of derived artifacts attempted by the ingest workflow, by artifact and result.",
	}, []string{"artifact", "result"})
)

func recordArtifact(artifact string, ok bool) {
	result := resultSucceeded
	if !ok {
		result = resultFailed
	}

	ingestArtifacts.WithLabelValues(artifact, result).Inc()
}
