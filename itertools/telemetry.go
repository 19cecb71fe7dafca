package itertools

import (
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/iterkit/logger"
	"github.com/kbukum/iterkit/observability"
)

const instrumentationName = "github.com/kbukum/iterkit/itertools"

var instruments atomic.Pointer[observability.IteratorMetrics]

// SetMeterProvider records iterator metrics on mp instead of the global
// OpenTelemetry provider.
func SetMeterProvider(mp metric.MeterProvider) error {
	m, err := observability.NewIteratorMetrics(mp.Meter(instrumentationName))
	if err != nil {
		return err
	}
	instruments.Store(m)
	return nil
}

// iteratorMetrics returns the active instruments, creating them on the
// global provider on first use. A nil result records nothing.
func iteratorMetrics() *observability.IteratorMetrics {
	if m := instruments.Load(); m != nil {
		return m
	}
	m, err := observability.NewIteratorMetrics(otel.GetMeterProvider().Meter(instrumentationName))
	if err != nil {
		log().Warn("iterator metrics unavailable", logger.ErrorFields("metrics", err))
		return nil
	}
	instruments.CompareAndSwap(nil, m)
	return instruments.Load()
}

func log() *logger.Logger {
	return logger.Get("itertools")
}
