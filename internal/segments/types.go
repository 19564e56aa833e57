package segments

// Segment is one voiceover-script unit of a project. Num is the stable
// ordinal within the script; HTMLFiles names the animation variants the
// segment covers and is opaque to the matcher.
type Segment struct {
	Num       int      `json:"num"`
	Script    string   `json:"script"`
	HTMLFiles []string `json:"htmlFiles,omitempty"`
}

// Match is the resolved alignment of one segment. StartTime and EndTime are
// always populated after interpolation; the cue indices stay nil for
// segments that never held a window after conflict resolution.
type Match struct {
	Num           int     `json:"num"`
	Matched       bool    `json:"matched"`
	Confidence    float64 `json:"confidence"`
	StartCueIndex *int    `json:"startCueIndex"`
	EndCueIndex   *int    `json:"endCueIndex"`
	StartTime     float64 `json:"startTime"`
	EndTime       float64 `json:"endTime"`
}
