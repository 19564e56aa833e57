// Package timing fills the gaps the matchers leave behind.
//
// The beat aligner and segment window matcher both produce sparse anchor
// sets: times for entries they matched confidently, nil for the rest. This
// package densifies those into complete, monotonically non-decreasing
// outputs by linear interpolation between anchors and even-spacing
// extrapolation at the boundaries. Every degenerate input, including zero
// anchors and zero cues, still yields a fully populated result.
package timing
