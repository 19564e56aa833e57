package segments

import (
	"math"
	"sort"

	"beatsync/internal/srt"
	"beatsync/internal/textutil"
	"beatsync/internal/timing"
)

// Window search and scoring constants. The window cap and the stall limit
// are empirical bounds; treat changes as behavioral deviations needing
// re-validation.
const (
	// DefaultWindowCap limits how many cues one segment window may span.
	DefaultWindowCap = 40
	// DefaultStallLimit stops expanding a window start after this many
	// consecutive cue additions without improvement.
	DefaultStallLimit = 10
	// DefaultMinScore is the lowest window score considered a match.
	DefaultMinScore = 0.25
	// minScriptLength skips segments whose normalized script is too short
	// to carry a usable word signal.
	minScriptLength = 10
	// Window coverage of the script is weighted below script coverage of
	// the window: scripts carry stage directions beyond the spoken words,
	// so extra script vocabulary must never penalize a window.
	srtCoverageWeight    = 0.6
	scriptCoverageWeight = 0.4
)

// Options tunes the matcher. Zero values fall back to the defaults above.
type Options struct {
	WindowCap  int
	StallLimit int
	MinScore   float64
	// Spacing is the extrapolation spacing, in seconds per segment, used
	// when interpolating past the first or last matched segment.
	Spacing float64
}

func (o Options) withDefaults() Options {
	if o.WindowCap <= 0 {
		o.WindowCap = DefaultWindowCap
	}
	if o.StallLimit <= 0 {
		o.StallLimit = DefaultStallLimit
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	if o.Spacing <= 0 {
		o.Spacing = timing.DefaultSegmentSpacing
	}
	return o
}

// candidate is a segment's independently best cue window before conflict
// resolution. start and end are inclusive cue positions.
type candidate struct {
	pos   int // position in the input segment order
	start int
	end   int
	score float64
}

// MatchSegments aligns an ordered segment list against a transcript's cues
// and returns one fully timed Match per segment, in input order.
//
// Pass 1 finds each segment's best-scoring contiguous cue window
// independently. Pass 2 resolves overlaps greedily by descending confidence
// while preserving script order: a window is only accepted when every
// already-accepted window of an earlier segment ends strictly before it and
// every accepted window of a later segment starts strictly after it.
// Rejected and unmatched segments receive interpolated time ranges.
func MatchSegments(cues []srt.Cue, segs []Segment, opts Options) []Match {
	opts = opts.withDefaults()

	candidates := make([]*candidate, len(segs))
	for i, seg := range segs {
		candidates[i] = bestWindow(cues, seg, opts)
	}

	accepted := resolveConflicts(candidates)

	results := make([]Match, len(segs))
	ranges := make([]*timing.Range, len(segs))
	for i, seg := range segs {
		match := Match{Num: seg.Num}
		if cand := candidates[i]; cand != nil {
			match.Confidence = math.Round(cand.score * 100)
		}
		if rng, ok := accepted[i]; ok {
			start := rng.start
			end := rng.end
			match.Matched = true
			match.StartCueIndex = &start
			match.EndCueIndex = &end
			ranges[i] = &timing.Range{Start: cues[start].Start, End: cues[end].End}
		}
		results[i] = match
	}

	filled := timing.FillSegmentRanges(ranges, opts.Spacing)
	for i := range results {
		results[i].StartTime = filled[i].Start
		results[i].EndTime = filled[i].End
	}
	return results
}

// bestWindow searches every candidate window for one segment and returns the
// best, or nil when the segment cannot produce a scoreable window.
func bestWindow(cues []srt.Cue, seg Segment, opts Options) *candidate {
	if len(textutil.Normalize(seg.Script)) < minScriptLength {
		return nil
	}
	scriptWords := textutil.ContentWords(seg.Script)
	if len(scriptWords) == 0 {
		return nil
	}

	cueWords := make([]map[string]struct{}, len(cues))
	for i, cue := range cues {
		cueWords[i] = textutil.ContentWords(cue.Text)
	}

	best := candidate{start: -1, score: -1}
	for start := 0; start < len(cues); start++ {
		window := make(map[string]struct{})
		bestAtStart := -1.0
		stalled := 0
		for end := start; end < len(cues) && end-start < opts.WindowCap; end++ {
			for word := range cueWords[end] {
				window[word] = struct{}{}
			}
			score := windowScore(window, scriptWords)
			if score > bestAtStart {
				bestAtStart = score
				stalled = 0
			} else {
				stalled++
				if stalled >= opts.StallLimit {
					break
				}
			}
			if score > best.score {
				best = candidate{start: start, end: end, score: score}
			}
		}
	}

	if best.start < 0 || best.score < opts.MinScore {
		return nil
	}
	return &best
}

// windowScore combines two asymmetric coverage measures over content words.
// srtCoverage asks how much of the window's vocabulary the script explains;
// scriptCoverage asks how much of the script the window actually speaks.
func windowScore(window, script map[string]struct{}) float64 {
	if len(window) == 0 {
		return 0
	}
	shared := 0
	for word := range window {
		if _, ok := script[word]; ok {
			shared++
		}
	}
	srtCoverage := float64(shared) / float64(len(window))
	scriptCoverage := float64(shared) / float64(len(script))
	return srtCoverageWeight*srtCoverage + scriptCoverageWeight*scriptCoverage
}

type cueRange struct {
	start int
	end   int
}

// resolveConflicts greedily accepts candidate windows by descending
// confidence, keyed by segment position. Textual confidence never overrides
// script ordering: a window conflicting with any accepted window of an
// earlier or later segment is discarded, and that segment falls back to
// interpolated timing.
func resolveConflicts(candidates []*candidate) map[int]cueRange {
	order := make([]*candidate, 0, len(candidates))
	for pos, cand := range candidates {
		if cand != nil {
			cand.pos = pos
			order = append(order, cand)
		}
	}
	// Stable sort keeps first-found-wins behavior on equal scores.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].score > order[j].score
	})

	accepted := make(map[int]cueRange, len(order))
	for _, cand := range order {
		ok := true
		for pos, rng := range accepted {
			if pos < cand.pos && rng.end >= cand.start {
				ok = false
				break
			}
			if pos > cand.pos && rng.start <= cand.end {
				ok = false
				break
			}
		}
		if ok {
			accepted[cand.pos] = cueRange{start: cand.start, end: cand.end}
		}
	}
	return accepted
}
