// Package trace records what the rithm command line tool is doing.
//
// Events are grouped into spans: the driver span covers one command
// invocation, command spans cover one evaluated expression, batch file or
// conversion, and op spans cover single calculator operators.
//
// # Usage
//
//	rithm eval --trace=- --trace-level=detail "2 100 **"
//
// # Tracers
//
//   - Nop: disabled tracing, no allocation per event
//   - StreamTracer: writes each event to a file or stderr as it happens
//   - RingTracer: keeps the most recent events for dumping after a failure
//   - MultiTracer: fans events out to several tracers
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: only the ring dump written on failure
//   - LevelPhase: driver spans
//   - LevelDetail: driver and command spans
//   - LevelDebug: everything, including one event per operator
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeCommand, "eval", parentID)
//	defer span.End("")
package trace
