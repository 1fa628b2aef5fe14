// Package trace provides the event tracing used as lintfmt's diagnostic log.
//
// Tracing is off by default. It is enabled from the command line:
//
//	lintfmt format --trace=- --trace-level=detail report.json
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is disabled
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events in memory for post-mortem dumps
//   - MultiTracer: fans events out to several tracers
//
// # Levels and scopes
//
// Events carry a Scope (driver, stage, file). The Level decides which scopes
// are emitted: phase shows driver and stage boundaries, detail adds per-file
// events, debug emits everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "format", 0)
//	defer span.End("")
package trace
