// Package observability provides OpenTelemetry tracing and metrics
// integration for the analysis pipeline and the HTTP surface.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("convodyn"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanAnalyze)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("convodyn"))
//	defer mp.Shutdown(ctx)
//
//	counter, err := observability.Meter("convodyn/analyzer").Int64Counter("convodyn.conversations.analyzed")
//	counter.Add(ctx, 1, observability.WithOutcome("ok"))
package observability
