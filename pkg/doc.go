// Package pkg provides shared utilities for softkbd.
//
// This package contains common functionality used by the layout translator,
// the keyboard report emitters and the macropad runtime:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel errors for typing, report and configuration failures
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with a component attribute:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogDebug(pkg.ComponentLayout, "skipped character", "char", "\x01")
//
// # Errors
//
// Failures are reported with sentinel values that callers match with
// [errors.Is]:
//
//	if errors.Is(err, pkg.ErrReportFull) {
//	    // Too many keys held at once
//	}
package pkg
