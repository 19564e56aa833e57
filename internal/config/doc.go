// Package config loads, normalizes, and validates beatsync configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The alignment section exposes the
// matcher tuning parameters (thresholds, window cap, stall limit,
// extrapolation spacing) so deployments can adjust them without a rebuild;
// the shipped defaults reproduce the validated alignment behavior.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
