package beats

import (
	"math"
	"strings"

	"beatsync/internal/srt"
	"beatsync/internal/textutil"
	"beatsync/internal/timing"
)

// Acceptance thresholds and candidate scoring constants. These are tuned
// empirically; changing them changes alignment behavior and needs
// re-validation against the known scenarios.
const (
	// DefaultThreshold is the minimum similarity for accepting a match.
	DefaultThreshold = 0.15
	// LabelThreshold applies to label-type beats: short UI captions
	// produce weak overlap scores but rarely false-match.
	LabelThreshold = 0.08
	// containmentFloor is the minimum score credited when the beat text
	// appears literally inside a candidate window.
	containmentFloor = 0.25
	// containmentMinLength guards the floor against trivially short beat
	// texts that appear inside almost anything.
	containmentMinLength = 3
	// maxCueSpan is how many consecutive cues a candidate window may
	// join beyond the base cue. A beat's text regularly spans two or
	// three transcript cues.
	maxCueSpan = 2
)

// Options tunes the aligner. Zero values fall back to the defaults above.
type Options struct {
	Threshold      float64
	LabelThreshold float64
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.LabelThreshold <= 0 {
		o.LabelThreshold = LabelThreshold
	}
	return o
}

// Align matches an ordered beat list against a cue list and returns one
// Match per beat plus the fully interpolated time array.
//
// The search is forward-only: once a beat matches a cue, later beats only
// consider cues after it. Silent and data beats, and beats whose text
// normalizes to nothing, are recorded unmatched without consuming any of
// the search range. When bounds are nil the subtitle's own extent anchors
// the interpolation.
func Align(cues []srt.Cue, beatList []Beat, opts Options, bounds timing.Bounds) Result {
	opts = opts.withDefaults()

	matches := make([]Match, 0, len(beatList))
	anchors := make([]*float64, len(beatList))
	searchStart := 0

	for i, beat := range beatList {
		normalized := textutil.Normalize(beat.Text)
		if beat.Type == TypeSilent || beat.Type == TypeData || normalized == "" {
			matches = append(matches, unmatched(i, beat))
			continue
		}

		cueIdx, score := bestCandidate(cues, searchStart, normalized)
		threshold := opts.Threshold
		if beat.Type == TypeLabel {
			threshold = opts.LabelThreshold
		}
		if cueIdx < 0 || score < threshold {
			matches = append(matches, unmatched(i, beat))
			continue
		}

		time := cues[cueIdx].Start
		cueText := cues[cueIdx].Text
		idx := cueIdx
		matches = append(matches, Match{
			BeatIndex: i,
			CueIndex:  &idx,
			Score:     math.Round(score * 100),
			BeatText:  beat.Text,
			CueText:   &cueText,
			Time:      &time,
		})
		anchors[i] = &time
		searchStart = cueIdx + 1
	}

	if bounds.Floor == nil || bounds.Ceil == nil {
		if first, last, ok := srt.Bounds(cues); ok {
			if bounds.Floor == nil {
				bounds.Floor = &first
			}
			if bounds.Ceil == nil {
				bounds.Ceil = &last
			}
		}
	}

	return Result{
		Matches: matches,
		Times:   timing.FillBeatTimes(anchors, bounds),
	}
}

// bestCandidate scores the beat text against every cue at or after start,
// each considered alone and joined with its next one and two neighbors, and
// returns the base cue index of the best-scoring window.
func bestCandidate(cues []srt.Cue, start int, normalizedBeat string) (int, float64) {
	bestIdx := -1
	bestScore := 0.0

	for ci := start; ci < len(cues); ci++ {
		var window strings.Builder
		for span := 0; span <= maxCueSpan; span++ {
			if ci+span >= len(cues) {
				break
			}
			if span > 0 {
				window.WriteByte(' ')
			}
			window.WriteString(cues[ci+span].Text)

			score := textutil.Similarity(normalizedBeat, window.String())
			if len(normalizedBeat) >= containmentMinLength &&
				score < containmentFloor &&
				strings.Contains(textutil.Normalize(window.String()), normalizedBeat) {
				score = containmentFloor
			}
			if score > bestScore {
				bestScore = score
				bestIdx = ci
			}
		}
	}
	return bestIdx, bestScore
}

func unmatched(index int, beat Beat) Match {
	return Match{
		BeatIndex: index,
		BeatText:  beat.Text,
	}
}
