// Package srt parses SubRip subtitle text into timed cues.
//
// The parser favors partial results over total failure: malformed timestamps
// degrade to zero, unreadable blocks are skipped, and inline markup tags are
// stripped from cue text before use. Both comma and period millisecond
// separators are accepted.
package srt
