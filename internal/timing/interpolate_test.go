package timing

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.0005
}

func TestFillBeatTimesNoAnchors(t *testing.T) {
	got := FillBeatTimes([]*float64{nil, nil, nil, nil}, Bounds{Floor: ptr(10), Ceil: ptr(18)})
	want := []float64{10, 12.667, 15.333, 18}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("times[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFillBeatTimesSingleBeatMidpoint(t *testing.T) {
	got := FillBeatTimes([]*float64{nil}, Bounds{Floor: ptr(4), Ceil: ptr(10)})
	if len(got) != 1 || !almostEqual(got[0], 7) {
		t.Errorf("got %v, want [7]", got)
	}
}

func TestFillBeatTimesDefaultCeil(t *testing.T) {
	// Without bounds or cues, three beats spread across [0, 3*2).
	got := FillBeatTimes([]*float64{nil, nil, nil}, Bounds{})
	if !almostEqual(got[0], 0) || !almostEqual(got[2], 6) {
		t.Errorf("got %v, want spread over [0, 6]", got)
	}
}

func TestFillBeatTimesInterior(t *testing.T) {
	anchors := []*float64{ptr(2), nil, nil, ptr(8)}
	got := FillBeatTimes(anchors, Bounds{Floor: ptr(0), Ceil: ptr(20)})
	want := []float64{2, 4, 6, 8}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("times[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFillBeatTimesTrailing(t *testing.T) {
	// One anchor at index 0; the two trailing beats spread evenly between
	// the anchor and the ceiling without touching it.
	anchors := []*float64{ptr(6), nil, nil}
	got := FillBeatTimes(anchors, Bounds{Floor: ptr(0), Ceil: ptr(12)})
	want := []float64{6, 8, 10}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("times[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFillBeatTimesLeading(t *testing.T) {
	anchors := []*float64{nil, nil, ptr(6)}
	got := FillBeatTimes(anchors, Bounds{Floor: ptr(0), Ceil: ptr(12)})
	want := []float64{2, 4, 6}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("times[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	for i := range got {
		if got[i] < 0 {
			t.Errorf("times[%d] = %v below floor", i, got[i])
		}
	}
}

func TestFillBeatTimesMonotonicOnGarbledAnchors(t *testing.T) {
	// Anchor times out of order (garbled subtitle); output must still be
	// non-decreasing and fully populated.
	anchors := []*float64{ptr(10), nil, ptr(4), nil, ptr(12)}
	got := FillBeatTimes(anchors, Bounds{Floor: ptr(0), Ceil: ptr(20)})
	if len(got) != len(anchors) {
		t.Fatalf("len = %d, want %d", len(got), len(anchors))
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("times not monotonic at %d: %v", i, got)
		}
	}
}

func TestFillBeatTimesMillisecondRounding(t *testing.T) {
	anchors := []*float64{ptr(0), nil, nil, ptr(1)}
	got := FillBeatTimes(anchors, Bounds{})
	for i, v := range got {
		scaled := v * 1000
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Errorf("times[%d] = %v not millisecond-rounded", i, v)
		}
	}
	if !almostEqual(got[1], 0.333) || !almostEqual(got[2], 0.667) {
		t.Errorf("got %v, want thirds rounded to millis", got)
	}
}

func TestFillBeatTimesEmpty(t *testing.T) {
	if got := FillBeatTimes(nil, Bounds{}); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestFillSegmentRangesNoMatches(t *testing.T) {
	got := FillSegmentRanges([]*Range{nil, nil, nil}, 3)
	want := []Range{{0, 3}, {3, 6}, {6, 9}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFillSegmentRangesInterior(t *testing.T) {
	ranges := []*Range{
		{Start: 0, End: 4},
		nil,
		nil,
		{Start: 10, End: 15},
	}
	got := FillSegmentRanges(ranges, 3)
	// The 6-second gap between the matches splits into two 3-second slots.
	want := []Range{{0, 4}, {4, 7}, {7, 10}, {10, 15}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFillSegmentRangesExtrapolation(t *testing.T) {
	ranges := []*Range{
		nil,
		{Start: 5, End: 9},
		nil,
		nil,
	}
	got := FillSegmentRanges(ranges, 3)

	// Leading: one 3-second slot ending at the first match's start.
	if got[0] != (Range{Start: 2, End: 5}) {
		t.Errorf("leading range = %+v, want {2 5}", got[0])
	}
	// Trailing: fixed 3-second slots stacked after the last match.
	if got[2] != (Range{Start: 9, End: 12}) || got[3] != (Range{Start: 12, End: 15}) {
		t.Errorf("trailing ranges = %+v %+v", got[2], got[3])
	}
}

func TestFillSegmentRangesLeadingClampedAtZero(t *testing.T) {
	ranges := []*Range{nil, nil, {Start: 2, End: 6}}
	got := FillSegmentRanges(ranges, 3)
	for i, r := range got {
		if r.Start < 0 || r.End < r.Start {
			t.Errorf("range[%d] = %+v invalid", i, r)
		}
	}
	if got[1].End != 2 {
		t.Errorf("range[1].End = %v, want to abut the match at 2", got[1].End)
	}
}

func TestFillSegmentRangesOrdered(t *testing.T) {
	ranges := []*Range{
		nil,
		{Start: 8, End: 12},
		nil,
		{Start: 20, End: 24},
		nil,
	}
	got := FillSegmentRanges(ranges, 3)
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].End {
			t.Errorf("ranges overlap at %d: %+v then %+v", i, got[i-1], got[i])
		}
	}
	for i, r := range got {
		if r.End < r.Start {
			t.Errorf("range[%d] inverted: %+v", i, r)
		}
	}
}
