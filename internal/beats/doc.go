// Package beats aligns the ordered steps of a click-driven animation to the
// cues of one subtitle transcript.
//
// The aligner walks beats in order with a forward-only cursor over the cue
// list: matched cue indices are strictly increasing, reflecting the
// assumption that animation and voiceover order is sequential. Beats
// classified silent or data, and beats with no usable text, are skipped
// without consuming search range. Unmatched beats still receive times from
// the interpolation pass, so callers always get a complete time array.
package beats
