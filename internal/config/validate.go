package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlignment() error {
	a := c.Alignment
	for name, value := range map[string]float64{
		"alignment.beat_threshold":       a.BeatThreshold,
		"alignment.label_beat_threshold": a.LabelBeatThreshold,
		"alignment.segment_min_score":    a.SegmentMinScore,
	} {
		if value <= 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}
	if a.SegmentWindowCap < 1 {
		return errors.New("alignment.segment_window_cap must be at least 1")
	}
	if a.SegmentStallLimit < 1 {
		return errors.New("alignment.segment_stall_limit must be at least 1")
	}
	if a.SegmentSpacingSeconds <= 0 {
		return errors.New("alignment.segment_spacing_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
