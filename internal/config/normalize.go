package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAlignment()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAlignment() {
	if c.Alignment.BeatThreshold == 0 {
		c.Alignment.BeatThreshold = defaultBeatThreshold
	}
	if c.Alignment.LabelBeatThreshold == 0 {
		c.Alignment.LabelBeatThreshold = defaultLabelBeatThreshold
	}
	if c.Alignment.SegmentWindowCap == 0 {
		c.Alignment.SegmentWindowCap = defaultSegmentWindowCap
	}
	if c.Alignment.SegmentStallLimit == 0 {
		c.Alignment.SegmentStallLimit = defaultSegmentStallLimit
	}
	if c.Alignment.SegmentMinScore == 0 {
		c.Alignment.SegmentMinScore = defaultSegmentMinScore
	}
	if c.Alignment.SegmentSpacingSeconds == 0 {
		c.Alignment.SegmentSpacingSeconds = defaultSegmentSpacingSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
