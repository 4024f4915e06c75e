// Package logging assembles the structured slog loggers used across the
// fetch pipeline.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// provides attr helpers plus a no-op logger for tests. Prefer these
// constructors over hand-rolled slog setup so every component emits lines
// with the same shape.
package logging
