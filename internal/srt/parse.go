package srt

import (
	"regexp"
	"strconv"
	"strings"
)

// Cue is a single subtitle entry: source order index, start and end offsets
// in seconds, and the tag-stripped caption text. Cues keep the order the
// source file gives them; they are not re-sorted by time.
type Cue struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// markupTagPattern matches inline markup tags like <i> or <font color="...">.
var markupTagPattern = regexp.MustCompile(`<[^>]*>`)

// ParseCues turns raw subtitle text into an ordered cue list.
//
// Parsing is deliberately lenient: a garbled block is skipped and a malformed
// timestamp degrades to 0 rather than aborting, so a partially corrupt file
// still yields whatever cues are readable. Empty input yields an empty list.
func ParseCues(raw string) []Cue {
	content := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if content == "" {
		return nil
	}

	blocks := strings.Split(content, "\n\n")
	cues := make([]Cue, 0, len(blocks))

	for _, block := range blocks {
		lines := blockLines(block)
		if len(lines) == 0 {
			continue
		}

		cursor := 0
		index := len(cues) + 1
		if parsed, err := strconv.Atoi(lines[cursor]); err == nil {
			index = parsed
			cursor++
		}
		if cursor >= len(lines) || !strings.Contains(lines[cursor], "-->") {
			continue
		}

		parts := strings.SplitN(lines[cursor], "-->", 2)
		start := TimeToSeconds(parts[0])
		var end float64
		if len(parts) == 2 {
			end = TimeToSeconds(parts[1])
		}
		cursor++

		text := strings.Join(lines[cursor:], " ")
		text = strings.TrimSpace(markupTagPattern.ReplaceAllString(text, ""))

		cues = append(cues, Cue{
			Index: index,
			Start: start,
			End:   end,
			Text:  text,
		})
	}

	return cues
}

func blockLines(block string) []string {
	raw := strings.Split(strings.TrimSpace(block), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// TimeToSeconds converts an SRT timestamp (HH:MM:SS,mmm or HH:MM:SS.mmm) to
// fractional seconds. Malformed values return 0 so one bad cue cannot sink
// the rest of the file.
func TimeToSeconds(value string) float64 {
	value = strings.TrimSpace(value)
	// SRT proper uses a comma before milliseconds; tools exporting the
	// period form are common enough to accept both.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}

// Bounds returns the first cue start and last cue end of the list, and false
// when the list is empty. Matchers use these as default interpolation bounds
// when the caller supplies none.
func Bounds(cues []Cue) (first, last float64, ok bool) {
	if len(cues) == 0 {
		return 0, 0, false
	}
	first = cues[0].Start
	last = cues[0].End
	for _, cue := range cues {
		if cue.Start < first {
			first = cue.Start
		}
		if cue.End > last {
			last = cue.End
		}
	}
	return first, last, true
}
