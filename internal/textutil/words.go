package textutil

import "strings"

// stopWords are high-frequency function words excluded from content-word
// coverage. Voiceover scripts and transcripts share these regardless of
// whether they describe the same material, so they only add noise.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "has": {}, "have": {},
	"was": {}, "were": {}, "will": {}, "with": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "its": {}, "our": {}, "your": {}, "they": {},
	"them": {}, "their": {}, "she": {}, "him": {}, "her": {}, "his": {},
	"from": {}, "into": {}, "out": {}, "about": {}, "than": {}, "then": {},
	"when": {}, "what": {}, "which": {}, "who": {}, "how": {}, "why": {},
	"there": {}, "here": {}, "also": {}, "just": {}, "now": {}, "one": {},
	"two": {}, "let": {}, "lets": {}, "get": {}, "got": {}, "well": {},
	"very": {}, "some": {}, "more": {}, "most": {}, "other": {}, "each": {},
}

// ContentWords returns the set of unique normalized tokens longer than two
// characters, with stop words removed. These are the terms the segment
// window matcher measures coverage over.
func ContentWords(s string) map[string]struct{} {
	fields := strings.Fields(Normalize(s))
	set := make(map[string]struct{}, len(fields))
	for _, word := range fields {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}
