package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "Hello, World!", "hello world"},
		{"collapses whitespace", "  extra   spaces  ", "extra spaces"},
		{"newlines become spaces", "Line 1\nLine 2", "line 1 line 2"},
		{"keeps digits", "Figure 3 shows 42%", "figure 3 shows 42"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"  TACTICAL...  STAND BY  ",
		"already normalized text",
		"",
		"Ünïcode — dashes and àccents",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
