// Package trace provides a tracing subsystem for the Flint compiler.
//
// The trace package enables tracking of compilation phases, per-buffer
// processing, and other operations to help diagnose performance issues
// and hangs.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	flint lex --trace=- --trace-level=phase myfile.fl
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - NopTracer: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Buffer-level events
//   - LevelDebug: Everything including token-level events
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopePass: Compilation phases (lex, emit)
//   - ScopeBuffer: Per-buffer processing
//   - ScopeToken: Token level (future)
//
// # Context Propagation
//
// Tracers are propagated through the compilation pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
