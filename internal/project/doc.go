// Package project persists voiceover projects, their ordered segment
// scripts, and the timing results of alignment runs.
//
// Storage is a single SQLite database in the configured data directory,
// guarded by a file lock so only one process writes at a time. The matchers
// themselves never touch this package: they are pure functions, and
// persistence stays the caller's concern.
package project
