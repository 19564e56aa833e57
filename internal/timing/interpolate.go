package timing

import "math"

// DefaultSegmentSpacing is the per-segment span, in seconds, used when
// extrapolating segment ranges past the first or last matched segment.
const DefaultSegmentSpacing = 3.0

// Bounds optionally anchors a beat run at its edges. When a field is nil,
// the caller's fallback applies: the subtitle's first cue start and last cue
// end, or synthetic bounds when there are no cues at all.
type Bounds struct {
	Floor *float64
	Ceil  *float64
}

// FillBeatTimes densifies a sparse anchor array into a complete, monotonic
// time array. Entries in anchors are nil where no confident match exists.
//
// With no anchors at all, the beats spread evenly from floor to ceil (a
// single beat lands at the midpoint). Otherwise gaps interpolate linearly
// between the nearest anchors; runs past the last anchor space evenly toward
// ceil, and runs before the first anchor space evenly up from floor. All
// values round to millisecond precision.
func FillBeatTimes(anchors []*float64, bounds Bounds) []float64 {
	n := len(anchors)
	if n == 0 {
		return nil
	}

	floor := 0.0
	if bounds.Floor != nil {
		floor = *bounds.Floor
	}
	ceil := float64(n) * 2
	if bounds.Ceil != nil {
		ceil = *bounds.Ceil
	}
	if ceil < floor {
		ceil = floor
	}

	out := make([]float64, n)

	if !hasAnchor(anchors) {
		if n == 1 {
			out[0] = roundMillis(floor + (ceil-floor)/2)
			return out
		}
		step := (ceil - floor) / float64(n-1)
		for i := range out {
			out[i] = roundMillis(floor + float64(i)*step)
		}
		return out
	}

	for i := range anchors {
		if anchors[i] != nil {
			out[i] = roundMillis(*anchors[i])
			continue
		}
		prev := previousAnchor(anchors, i)
		next := nextAnchor(anchors, i)
		switch {
		case prev >= 0 && next >= 0:
			ratio := float64(i-prev) / float64(next-prev)
			out[i] = roundMillis(*anchors[prev] + ratio*(*anchors[next]-*anchors[prev]))
		case prev >= 0:
			span := ceil - *anchors[prev]
			if span < 0 {
				span = 0
			}
			// Evenly spaced slots between the last anchor and the
			// ceiling, exclusive of both.
			out[i] = roundMillis(*anchors[prev] + float64(i-prev)*span/float64(n-prev))
		default:
			span := *anchors[next] - floor
			if span < 0 {
				span = 0
			}
			value := *anchors[next] - float64(next-i)*span/float64(next+1)
			if value < floor {
				value = floor
			}
			out[i] = roundMillis(value)
		}
	}

	// Anchor times come from the source file as given; a garbled file can
	// order them backwards, so clamp to keep the output monotonic.
	for i := 1; i < n; i++ {
		if out[i] < out[i-1] {
			out[i] = out[i-1]
		}
	}
	return out
}

// Range is a resolved start/end pair in seconds.
type Range struct {
	Start float64 `json:"startTime"`
	End   float64 `json:"endTime"`
}

// FillSegmentRanges densifies a sparse list of matched segment ranges into a
// complete, ordered, non-overlapping list. Gaps between two matched segments
// linearly subdivide the time from the earlier segment's end to the later
// segment's start; gaps past the first or last match extrapolate at a fixed
// spacing seconds per segment (DefaultSegmentSpacing when spacing <= 0).
func FillSegmentRanges(ranges []*Range, spacing float64) []Range {
	n := len(ranges)
	if n == 0 {
		return nil
	}
	if spacing <= 0 {
		spacing = DefaultSegmentSpacing
	}

	out := make([]Range, n)

	first := -1
	last := -1
	for i, r := range ranges {
		if r == nil {
			continue
		}
		out[i] = Range{Start: roundMillis(r.Start), End: roundMillis(r.End)}
		if first < 0 {
			first = i
		}
		last = i
	}

	if first < 0 {
		for i := range out {
			out[i] = Range{
				Start: roundMillis(float64(i) * spacing),
				End:   roundMillis(float64(i+1) * spacing),
			}
		}
		return out
	}

	// Leading run: stack fixed-width slots backward from the first match,
	// clamped at zero.
	for i := first - 1; i >= 0; i-- {
		distance := float64(first - i)
		end := out[first].Start - (distance-1)*spacing
		start := end - spacing
		if start < 0 {
			start = 0
		}
		if end < start {
			end = start
		}
		out[i] = Range{Start: roundMillis(start), End: roundMillis(end)}
	}

	// Trailing run: stack forward from the last match.
	for i := last + 1; i < n; i++ {
		distance := float64(i - last)
		start := out[last].End + (distance-1)*spacing
		out[i] = Range{Start: roundMillis(start), End: roundMillis(start + spacing)}
	}

	// Interior runs: subdivide the gap between the surrounding matches.
	prev := first
	for i := first + 1; i <= last; i++ {
		if ranges[i] == nil {
			continue
		}
		gapCount := i - prev - 1
		if gapCount > 0 {
			gap := out[i].Start - out[prev].End
			if gap < 0 {
				gap = 0
			}
			span := gap / float64(gapCount)
			for k := 1; k <= gapCount; k++ {
				out[prev+k] = Range{
					Start: roundMillis(out[prev].End + float64(k-1)*span),
					End:   roundMillis(out[prev].End + float64(k)*span),
				}
			}
		}
		prev = i
	}

	// Final ordering pass for degenerate inputs.
	for i := range out {
		if out[i].End < out[i].Start {
			out[i].End = out[i].Start
		}
		if i > 0 && out[i].Start < out[i-1].End {
			out[i].Start = out[i-1].End
			if out[i].End < out[i].Start {
				out[i].End = out[i].Start
			}
		}
	}
	return out
}

func hasAnchor(anchors []*float64) bool {
	for _, a := range anchors {
		if a != nil {
			return true
		}
	}
	return false
}

func previousAnchor(anchors []*float64, from int) int {
	for i := from - 1; i >= 0; i-- {
		if anchors[i] != nil {
			return i
		}
	}
	return -1
}

func nextAnchor(anchors []*float64, from int) int {
	for i := from + 1; i < len(anchors); i++ {
		if anchors[i] != nil {
			return i
		}
	}
	return -1
}

func roundMillis(value float64) float64 {
	return math.Round(value*1000) / 1000
}
