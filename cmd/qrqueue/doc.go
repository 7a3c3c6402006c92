// Package main hosts the qrqueue CLI entrypoint and command graph.
//
// The Cobra-based command tree scans QR images into the local upload queue,
// lists and removes queued items, renders QR labels, reports database health,
// and scaffolds configuration. Commands share one lazily opened queue store
// per process through commandContext; the store itself lives in
// internal/queue and the CLI never touches the database directly.
package main
