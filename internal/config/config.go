// Package config loads the gallery category configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/posit-dev/connect-gallery-action/internal/gallery"
)

// ErrConfigLoadFailed indicates the category config file could not be read
// or decoded.
var ErrConfigLoadFailed = errors.New("gallery config load failed")

// Loader loads the gallery configuration from a file path.
type Loader interface {
	Load(path string) (gallery.Config, error)
}

// DefaultLoader loads the configuration from disk, choosing the decoder by
// file extension: .toml, .yaml/.yml or .json.
type DefaultLoader struct{}

var _ Loader = (*DefaultLoader)(nil)

func (d *DefaultLoader) Load(path string) (gallery.Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return gallery.Config{}, fmt.Errorf("%w: path cannot be empty", ErrConfigLoadFailed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return gallery.Config{}, fmt.Errorf("%w: failed to read config file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	var cfg gallery.Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return gallery.Config{}, fmt.Errorf("%w: unsupported config format (%s)", ErrConfigLoadFailed, ext)
	}
	if err != nil {
		return gallery.Config{}, fmt.Errorf("%w: failed to decode config file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	return cfg, nil
}
