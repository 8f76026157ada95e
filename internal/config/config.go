// Package config loads the imlayout tool configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-imlayout/internal/logging"
)

// ErrUnknownFormat is returned for a config file whose extension is not
// .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config is the on-disk tool configuration.
type Config struct {
	Logging logging.Config `toml:"logging" yaml:"logging"`
	Render  Render         `toml:"render" yaml:"render"`
}

// Render holds the defaults for the PNG painter.
type Render struct {
	Background string  `toml:"background" yaml:"background"` // #rrggbb
	Scale      float64 `toml:"scale" yaml:"scale"`
	Labels     bool    `toml:"labels" yaml:"labels"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logging: logging.DefaultConfig(),
		Render: Render{
			Background: "#ffffff",
			Scale:      1,
		},
	}
}

// Load reads the file at path, picking the decoder by extension, and
// fills unset fields from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ".yml").
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	def := Default()
	cfg.Logging = cfg.Logging.Merge(def.Logging)
	if cfg.Render.Background == "" {
		cfg.Render.Background = def.Render.Background
	}
	if cfg.Render.Scale == 0 {
		cfg.Render.Scale = def.Render.Scale
	}
	return cfg, cfg.Validate()
}

// Validate checks the logging section and the render scale.
func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("config: render.scale must be positive, got %v", c.Render.Scale)
	}
	return nil
}
