package beats

// Type classifies whether a beat is expected to have a spoken counterpart.
// Silent and data beats never match the transcript; label beats are short
// on-screen captions that match weakly but reliably.
type Type string

const (
	TypeSpeech Type = "speech"
	TypeLabel  Type = "label"
	TypeData   Type = "data"
	TypeSilent Type = "silent"
)

// Beat is one click-triggered animation step with the text it reveals.
// Text may be empty when a step changes only visuals.
type Beat struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Type  Type   `json:"type,omitempty"`
}

// Match records the outcome of aligning one beat against the cue stream.
// CueIndex and Time are nil when the beat went unmatched, either because no
// candidate cleared the threshold or because the beat type never speaks.
type Match struct {
	BeatIndex int      `json:"beatIndex"`
	CueIndex  *int     `json:"cueIndex"`
	Score     float64  `json:"score"`
	BeatText  string   `json:"beatText"`
	CueText   *string  `json:"cueText"`
	Time      *float64 `json:"time,omitempty"`
}

// Result bundles the per-beat diagnostics with the densified time array.
// Times always has one entry per beat, even for beats that never matched.
type Result struct {
	Matches []Match   `json:"matches"`
	Times   []float64 `json:"times"`
}
