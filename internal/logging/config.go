package logging

import (
	"fmt"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Sink selects where records are written.
type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

// Config describes the process logger. Zero fields fall back to
// DefaultConfig.
type Config struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Sink   string `toml:"sink" yaml:"sink"`
	File   string `toml:"file" yaml:"file"`

	MaxSizeMB  int  `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days" yaml:"max_age_days"`
	Compress   bool `toml:"compress" yaml:"compress"`
}

// DefaultConfig logs errors as text to stderr.
func DefaultConfig() Config {
	return Config{
		Level:      "error",
		Format:     string(FormatText),
		Sink:       string(SinkStderr),
		File:       "imlayout.log",
		MaxSizeMB:  20,
		MaxBackups: 5,
		MaxAgeDays: 7,
	}
}

// Merge returns c with every zero field taken from base.
func (c Config) Merge(base Config) Config {
	out := c
	if out.Level == "" {
		out.Level = base.Level
	}
	if out.Format == "" {
		out.Format = base.Format
	}
	if out.Sink == "" {
		out.Sink = base.Sink
	}
	if out.File == "" {
		out.File = base.File
	}
	if out.MaxSizeMB == 0 {
		out.MaxSizeMB = base.MaxSizeMB
	}
	if out.MaxBackups == 0 {
		out.MaxBackups = base.MaxBackups
	}
	if out.MaxAgeDays == 0 {
		out.MaxAgeDays = base.MaxAgeDays
	}
	return out
}

// Normalize lower-cases the enum fields and validates them.
func (c Config) Normalize() (Config, error) {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Sink = strings.ToLower(strings.TrimSpace(c.Sink))
	c.File = strings.TrimSpace(c.File)
	c.MaxSizeMB = max(c.MaxSizeMB, 0)
	c.MaxBackups = max(c.MaxBackups, 0)
	c.MaxAgeDays = max(c.MaxAgeDays, 0)
	return c, c.Validate()
}

// Validate reports the first invalid enum field.
func (c Config) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: invalid %q", c.Level)
	}
	switch Format(c.Format) {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("logging.format: invalid %q", c.Format)
	}
	switch Sink(c.Sink) {
	case "", SinkStderr, SinkFile, SinkNone:
	default:
		return fmt.Errorf("logging.sink: invalid %q", c.Sink)
	}
	return nil
}
