// Package logging assembles the structured slog loggers used by qrqueue.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so store and intake code can tag log
// lines with queue item ids and correlation ids. A no-op logger is provided
// for tests and for wiring code that runs before configuration is loaded.
package logging
