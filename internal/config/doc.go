// Package config loads, normalizes, and validates qrqueue configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// QRQUEUE_DATA_DIR. The Config type centralizes the knobs the CLI and the
// queue store need so directories and store names are resolved in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
