// Package observability provides OpenTelemetry metrics for iterkit.
//
// Metrics:
//
//	cfg := observability.DefaultMeterConfig("iterctl")
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	m, err := observability.NewIteratorMetrics(observability.Meter("iterkit"))
//	m.RecordPull(ctx)
//
// When metrics are disabled the itertools package falls back to the global
// provider, which is a no-op until one is installed.
package observability
