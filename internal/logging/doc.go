// Package logging assembles the structured slog loggers used across
// ostforge.
//
// It owns level and output plumbing and exposes attribute helpers so
// pipeline code can tag log lines with track numbers and run IDs using
// the same keys everywhere. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
