// Package textutil provides the text normalization and similarity primitives
// shared by the beat aligner and the segment window matcher.
//
// Normalize converts raw cue or script text into a canonical lowercase form
// suitable for comparison. Similarity scores two fragments on a 0..1 scale by
// combining word-overlap, character-bigram overlap, and a substring
// containment bonus. ContentWords extracts the stop-word-filtered token sets
// that the segment matcher measures coverage over.
//
// Everything here is a pure function: deterministic, allocation-light, and
// safe for concurrent use.
package textutil
