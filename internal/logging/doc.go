// Package logging assembles the structured slog loggers used across
// beatsync.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes typed attribute helpers plus a no-op logger for
// tests and wiring code that cannot fail. The "auto" format picks the
// console handler on an interactive terminal and JSON otherwise.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging
