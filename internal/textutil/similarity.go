package textutil

import "strings"

// containmentBonus is added when one normalized string appears verbatim
// inside the other. Exact quotes embedded in longer transcript lines would
// otherwise score poorly on the overlap ratios alone.
const containmentBonus = 0.3

// Similarity scores how alike two text fragments are on a 0..1 scale.
//
// The score combines three signals: a word-overlap ratio over unique tokens,
// a character-bigram overlap ratio over the full normalized strings, and a
// substring containment bonus. The bigram signal recovers partial credit when
// word tokenization disagrees (typos, different segmentation); the bonus
// rewards literal quotes. Transcripts rarely match on-screen text verbatim,
// so neither token- nor character-level overlap is trusted alone.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	score := overlapRatio(uniqueWords(na), uniqueWords(nb))
	if bigram := overlapRatio(bigrams(na), bigrams(nb)); bigram > score {
		score = bigram
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		score += containmentBonus
	}
	if score > 1 {
		score = 1
	}
	return score
}

// overlapRatio returns |a ∩ b| / max(|a|, |b|), or 0 when either set is empty.
func overlapRatio(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for item := range a {
		if _, ok := b[item]; ok {
			shared++
		}
	}
	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	return float64(shared) / float64(denom)
}

func uniqueWords(normalized string) map[string]struct{} {
	fields := strings.Fields(normalized)
	set := make(map[string]struct{}, len(fields))
	for _, word := range fields {
		set[word] = struct{}{}
	}
	return set
}

// bigrams returns the set of overlapping two-rune substrings of s, spaces
// included, so adjacency across word boundaries still contributes.
func bigrams(s string) map[string]struct{} {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}
	set := make(map[string]struct{}, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = struct{}{}
	}
	return set
}
