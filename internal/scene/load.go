package scene

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
)

// ErrUnknownFormat is returned for a scene file whose extension is not
// .yaml, .yml or .toml.
var ErrUnknownFormat = errors.New("scene: unknown file format")

// Load reads the scene description at path, picking the decoder by extension.
func Load(path string) (Desc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Desc{}, fmt.Errorf("scene: %w", err)
	}
	d, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Desc{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Decode parses data in the format named by ext (".yaml", ".yml", ".toml").
// Unknown keys are rejected.
func Decode(data []byte, ext string) (Desc, error) {
	var d Desc
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return Desc{}, errors.New("scene: empty document")
			}
			return Desc{}, fmt.Errorf("scene: decode yaml: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &d)
		if err != nil {
			return Desc{}, fmt.Errorf("scene: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Desc{}, fmt.Errorf("scene: unknown key %q", undecoded[0].String())
		}
	default:
		return Desc{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return d, nil
}
