// Package segments aligns voiceover-script units to contiguous cue windows
// across a whole transcript.
//
// Unlike the per-file beat aligner, segment scripts are long and mix
// dialogue with stage directions, so matching works on content-word coverage
// over bounded cue windows rather than direct string similarity. A second
// pass resolves overlapping windows greedily by confidence while preserving
// script order, and the interpolator guarantees every segment ends up with a
// concrete, ordered, non-overlapping time range.
package segments
