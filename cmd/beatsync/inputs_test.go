package main

import (
	"os"
	"path/filepath"
	"testing"

	"beatsync/internal/beats"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadBeatsFileTyped(t *testing.T) {
	path := writeTemp(t, "beats.json", `[
		{"text": "Apples", "type": "speech"},
		{"text": "Chart appears", "type": "label"},
		{"text": "", "type": "silent"}
	]`)

	list, err := readBeatsFile(path)
	if err != nil {
		t.Fatalf("readBeatsFile: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d beats, want 3", len(list))
	}
	if list[0].Index != 0 || list[0].Text != "Apples" || list[0].Type != beats.TypeSpeech {
		t.Errorf("beat 0 = %+v", list[0])
	}
	if list[1].Type != beats.TypeLabel {
		t.Errorf("beat 1 type = %q", list[1].Type)
	}
	if list[2].Type != beats.TypeSilent {
		t.Errorf("beat 2 type = %q", list[2].Type)
	}
}

func TestReadBeatsFileStringShorthand(t *testing.T) {
	path := writeTemp(t, "beats.json", `["one beat", "two beat"]`)

	list, err := readBeatsFile(path)
	if err != nil {
		t.Fatalf("readBeatsFile: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d beats, want 2", len(list))
	}
	if list[1].Index != 1 || list[1].Text != "two beat" || list[1].Type != "" {
		t.Errorf("beat 1 = %+v", list[1])
	}
}

func TestReadBeatsFileMalformed(t *testing.T) {
	path := writeTemp(t, "beats.json", `{"not": "an array"}`)
	if _, err := readBeatsFile(path); err == nil {
		t.Error("malformed beats file should fail")
	}
}

func TestReadSegmentsFileDefaultsNums(t *testing.T) {
	path := writeTemp(t, "segments.json", `[
		{"script": "First segment narration"},
		{"num": 7, "script": "Explicit number", "htmlFiles": ["a.html"]},
		{"script": "Third segment"}
	]`)

	segs, err := readSegmentsFile(path)
	if err != nil {
		t.Fatalf("readSegmentsFile: %v", err)
	}
	if segs[0].Num != 1 {
		t.Errorf("segment 0 num = %d, want defaulted 1", segs[0].Num)
	}
	if segs[1].Num != 7 {
		t.Errorf("segment 1 num = %d, want 7", segs[1].Num)
	}
	if segs[2].Num != 3 {
		t.Errorf("segment 2 num = %d, want defaulted 3", segs[2].Num)
	}
	if len(segs[1].HTMLFiles) != 1 || segs[1].HTMLFiles[0] != "a.html" {
		t.Errorf("segment 1 html files = %v", segs[1].HTMLFiles)
	}
}

func TestReadCueFile(t *testing.T) {
	path := writeTemp(t, "subs.srt", "1\n00:00:01,000 --> 00:00:03,000\nHello there\n\n2\n00:00:04,000 --> 00:00:06,000\nSecond cue\n")

	cues, err := readCueFile(path)
	if err != nil {
		t.Fatalf("readCueFile: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	if cues[0].Start != 1 || cues[0].Text != "Hello there" {
		t.Errorf("cue 0 = %+v", cues[0])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten chars here", 10, "exactly t…"},
		{"héllo wörld extra", 8, "héllo w…"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := formatSeconds(12.6669); got != "12.667" {
		t.Errorf("formatSeconds = %q", got)
	}
	if got := formatSeconds(0); got != "0.000" {
		t.Errorf("formatSeconds(0) = %q", got)
	}
}

func TestFormatConfidence(t *testing.T) {
	if got := formatConfidence(86.4); got != "86" {
		t.Errorf("formatConfidence = %q", got)
	}
}
