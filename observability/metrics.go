package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names.
const (
	MetricTeePulls        = "itertools.tee.pulls"
	MetricTeeBlocks       = "itertools.tee.blocks"
	MetricRestoreRejected = "itertools.restore.rejected"
)

// IteratorMetrics holds the instruments recorded by the itertools package.
type IteratorMetrics struct {
	teePulls        metric.Int64Counter
	teeBlocks       metric.Int64UpDownCounter
	restoreRejected metric.Int64Counter
}

// NewIteratorMetrics creates iterator instruments on the given meter.
func NewIteratorMetrics(meter metric.Meter) (*IteratorMetrics, error) {
	teePulls, err := meter.Int64Counter(MetricTeePulls,
		metric.WithDescription("Values pulled from tee sources"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricTeePulls, err)
	}

	teeBlocks, err := meter.Int64UpDownCounter(MetricTeeBlocks,
		metric.WithDescription("Tee buffer blocks currently held"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s gauge: %w", MetricTeeBlocks, err)
	}

	restoreRejected, err := meter.Int64Counter(MetricRestoreRejected,
		metric.WithDescription("Restore calls rejected by kind and code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRestoreRejected, err)
	}

	return &IteratorMetrics{
		teePulls:        teePulls,
		teeBlocks:       teeBlocks,
		restoreRejected: restoreRejected,
	}, nil
}

// RecordPull counts one value pulled from a shared tee source.
func (m *IteratorMetrics) RecordPull(ctx context.Context) {
	if m == nil {
		return
	}
	m.teePulls.Add(ctx, 1)
}

// RecordBlocks adjusts the live tee block count by delta.
func (m *IteratorMetrics) RecordBlocks(ctx context.Context, delta int64) {
	if m == nil {
		return
	}
	m.teeBlocks.Add(ctx, delta)
}

// RecordRestoreRejected counts a rejected restore.
func (m *IteratorMetrics) RecordRestoreRejected(ctx context.Context, kind, code string) {
	if m == nil {
		return
	}
	m.restoreRejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("code", code),
	))
}
