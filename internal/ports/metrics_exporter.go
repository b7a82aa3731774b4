package ports

import (
	"context"
	"time"
)

// Stream names the three independent request channels of the explorer.
type Stream string

const (
	StreamDatasets   Stream = "datasets"
	StreamExpression Stream = "expression"
	StreamPrediction Stream = "prediction"
)

// MetricsExporter exports backend call metrics to an external observability system.
type MetricsExporter interface {
	// RecordRequest records the outcome and latency of one backend call.
	RecordRequest(ctx context.Context, r RequestSample)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// RequestSample describes a single settled backend call.
type RequestSample struct {
	Stream   Stream
	Duration time.Duration
	Err      error
}
