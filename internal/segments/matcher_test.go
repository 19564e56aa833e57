package segments

import (
	"testing"

	"beatsync/internal/srt"
)

func TestMatchSegmentsBasic(t *testing.T) {
	cues := []srt.Cue{
		{Index: 1, Start: 0, End: 2, Text: "quantum flux capacitors hum steadily"},
		{Index: 2, Start: 2, End: 4, Text: "engineers adjust the quantum flux"},
		{Index: 3, Start: 5, End: 7, Text: "meanwhile glaciers carve deep valleys"},
		{Index: 4, Start: 7, End: 9, Text: "glaciers retreat every warm season"},
	}
	segs := []Segment{
		{Num: 1, Script: "Quantum flux capacitors hum while engineers adjust"},
		{Num: 2, Script: "Glaciers carve deep valleys then retreat each warm season"},
	}

	matches := MatchSegments(cues, segs, Options{})
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	first := matches[0]
	if !first.Matched {
		t.Fatal("first segment should match")
	}
	if *first.StartCueIndex != 0 || *first.EndCueIndex != 1 {
		t.Errorf("first cue range = [%d, %d], want [0, 1]", *first.StartCueIndex, *first.EndCueIndex)
	}
	if first.StartTime != 0 || first.EndTime != 4 {
		t.Errorf("first times = [%v, %v], want [0, 4]", first.StartTime, first.EndTime)
	}
	if first.Confidence < 80 {
		t.Errorf("first confidence = %v, want >= 80", first.Confidence)
	}

	second := matches[1]
	if !second.Matched {
		t.Fatal("second segment should match")
	}
	if *second.StartCueIndex != 2 || *second.EndCueIndex != 3 {
		t.Errorf("second cue range = [%d, %d], want [2, 3]", *second.StartCueIndex, *second.EndCueIndex)
	}
	if second.StartTime != 5 || second.EndTime != 9 {
		t.Errorf("second times = [%v, %v], want [5, 9]", second.StartTime, second.EndTime)
	}
}

func TestMatchSegmentsConflictKeepsHigherConfidence(t *testing.T) {
	// Both segments score best against the last cue. The later segment
	// scores higher, so the earlier one loses its window and falls back to
	// interpolated timing.
	cues := []srt.Cue{
		{Index: 1, Start: 0, End: 3, Text: "random chatter about weather"},
		{Index: 2, Start: 3, End: 6, Text: "orbital station docking clamps engage"},
		{Index: 3, Start: 6, End: 9, Text: "the orbital station rotates slowly"},
	}
	segs := []Segment{
		{Num: 1, Script: "orbital station"},
		{Num: 2, Script: "the orbital station rotates slowly overhead"},
	}

	matches := MatchSegments(cues, segs, Options{})

	loser := matches[0]
	if loser.Matched {
		t.Errorf("conflicting earlier segment should be rejected, got range [%v, %v]",
			loser.StartCueIndex, loser.EndCueIndex)
	}
	if loser.Confidence == 0 {
		t.Error("rejected segment keeps its candidate confidence")
	}

	winner := matches[1]
	if !winner.Matched {
		t.Fatal("higher-confidence segment should keep its window")
	}
	if *winner.StartCueIndex != 2 || *winner.EndCueIndex != 2 {
		t.Errorf("winner cue range = [%d, %d], want [2, 2]", *winner.StartCueIndex, *winner.EndCueIndex)
	}

	// Interpolated timing still lands before the winner and stays ordered.
	if loser.EndTime > winner.StartTime {
		t.Errorf("loser end %v overlaps winner start %v", loser.EndTime, winner.StartTime)
	}
	if loser.StartTime >= loser.EndTime {
		t.Errorf("loser range [%v, %v] is not ordered", loser.StartTime, loser.EndTime)
	}
}

func TestMatchSegmentsShortScriptSkipped(t *testing.T) {
	cues := []srt.Cue{
		{Index: 1, Start: 0, End: 2, Text: "quantum flux capacitors hum steadily"},
	}
	segs := []Segment{
		{Num: 1, Script: "Hi."},
		{Num: 2, Script: "Quantum flux capacitors hum"},
	}

	matches := MatchSegments(cues, segs, Options{})
	if matches[0].Matched {
		t.Error("too-short script should never match")
	}
	if matches[0].Confidence != 0 {
		t.Errorf("skipped segment confidence = %v, want 0", matches[0].Confidence)
	}
	if !matches[1].Matched {
		t.Error("normal segment should still match")
	}
}

func TestMatchSegmentsBelowMinScore(t *testing.T) {
	cues := []srt.Cue{
		{Index: 1, Start: 0, End: 2, Text: "quantum flux capacitors hum steadily"},
	}
	segs := []Segment{
		{Num: 1, Script: "zebra xylophone quartz marbles everywhere"},
	}

	matches := MatchSegments(cues, segs, Options{})
	if matches[0].Matched {
		t.Error("disjoint vocabulary should not match")
	}
	// Unmatched segments still receive a synthetic time range.
	if matches[0].EndTime <= matches[0].StartTime {
		t.Errorf("fallback range [%v, %v] is not ordered", matches[0].StartTime, matches[0].EndTime)
	}
}

func TestMatchSegmentsNoCues(t *testing.T) {
	segs := []Segment{
		{Num: 1, Script: "Quantum flux capacitors hum while engineers adjust"},
		{Num: 2, Script: "Glaciers carve deep valleys then retreat each warm season"},
	}

	matches := MatchSegments(nil, segs, Options{Spacing: 4})
	for i, match := range matches {
		if match.Matched {
			t.Errorf("segment %d matched with no cues", i)
		}
	}
	if matches[0].StartTime != 0 || matches[0].EndTime != 4 {
		t.Errorf("segment 1 range = [%v, %v], want [0, 4]", matches[0].StartTime, matches[0].EndTime)
	}
	if matches[1].StartTime != 4 || matches[1].EndTime != 8 {
		t.Errorf("segment 2 range = [%v, %v], want [4, 8]", matches[1].StartTime, matches[1].EndTime)
	}
}

func TestResolveConflicts(t *testing.T) {
	candidates := []*candidate{
		{start: 0, end: 2, score: 0.5},
		{start: 2, end: 4, score: 0.9},
		nil,
		{start: 5, end: 6, score: 0.7},
	}

	accepted := resolveConflicts(candidates)

	if _, ok := accepted[0]; ok {
		t.Error("position 0 overlaps the stronger later window and must lose")
	}
	if rng, ok := accepted[1]; !ok || rng != (cueRange{start: 2, end: 4}) {
		t.Errorf("position 1 = %v, %v, want {2 4} accepted", rng, ok)
	}
	if rng, ok := accepted[3]; !ok || rng != (cueRange{start: 5, end: 6}) {
		t.Errorf("position 3 = %v, %v, want {5 6} accepted", rng, ok)
	}
}

func TestResolveConflictsRespectsOrder(t *testing.T) {
	// A high-scoring window for a later segment that sits before an
	// already-accepted earlier segment is still rejected.
	candidates := []*candidate{
		{start: 5, end: 8, score: 0.95},
		{start: 3, end: 6, score: 0.9},
	}

	accepted := resolveConflicts(candidates)
	if _, ok := accepted[0]; !ok {
		t.Error("highest-scoring window should be accepted")
	}
	if _, ok := accepted[1]; ok {
		t.Error("later segment cannot sit at or before the earlier one's window")
	}
}

func TestWindowScoreWeighting(t *testing.T) {
	script := map[string]struct{}{"alpha": {}, "beta": {}, "gamma": {}, "delta": {}}
	window := map[string]struct{}{"alpha": {}, "beta": {}}

	// Full window coverage, half script coverage.
	got := windowScore(window, script)
	want := srtCoverageWeight*1.0 + scriptCoverageWeight*0.5
	if got != want {
		t.Errorf("windowScore = %v, want %v", got, want)
	}

	if windowScore(map[string]struct{}{}, script) != 0 {
		t.Error("empty window must score 0")
	}
}
