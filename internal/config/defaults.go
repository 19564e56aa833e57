package config

const (
	defaultDataDir = "~/.local/share/beatsync"
	defaultLogDir  = "~/.local/share/beatsync/logs"

	defaultLogFormat = "auto"
	defaultLogLevel  = "info"

	defaultBeatThreshold         = 0.15
	defaultLabelBeatThreshold    = 0.08
	defaultSegmentWindowCap      = 40
	defaultSegmentStallLimit     = 10
	defaultSegmentMinScore       = 0.25
	defaultSegmentSpacingSeconds = 3.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Alignment: Alignment{
			BeatThreshold:         defaultBeatThreshold,
			LabelBeatThreshold:    defaultLabelBeatThreshold,
			SegmentWindowCap:      defaultSegmentWindowCap,
			SegmentStallLimit:     defaultSegmentStallLimit,
			SegmentMinScore:       defaultSegmentMinScore,
			SegmentSpacingSeconds: defaultSegmentSpacingSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
