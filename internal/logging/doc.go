// Package logging owns qimu's single logging policy.
//
// A Controller resolves one slog level per invocation (debug beats verbose
// beats the WARNING default) and builds the sinks: a console handler that
// always writes to the error stream, plus an optional append-mode file handler
// at the same level. Configure may be called again; it replaces the sinks and
// closes the previous log file instead of stacking handlers.
//
// Command code receives the configured *slog.Logger through the execution
// context. The level is fixed inside the handlers, so nothing downstream can
// raise or lower verbosity once dispatch has started.
package logging
