package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// FileName is the name of the manifest file expected in each extension directory.
const FileName = "manifest.json"

// ErrLoadFailed indicates that the extensions directory could not be scanned
// or that a present manifest file could not be decoded.
var ErrLoadFailed = errors.New("manifest load failed")

// Loader reads extension manifests from a directory tree where each
// immediate subdirectory holds at most one manifest.json.
type Loader struct {
	logger hclog.Logger
}

// NewLoader creates a Loader which logs skipped directories via the supplied logger.
func NewLoader(logger hclog.Logger) *Loader {
	return &Loader{logger: logger.Named("manifest")}
}

// LoadDir scans dir and returns manifests keyed by subdirectory name.
// Subdirectories without a manifest.json are skipped. A manifest file that
// exists but cannot be read or decoded fails the whole load, since the rest
// of the pipeline assumes manifests are well-formed.
func (l *Loader) LoadDir(dir string) (map[string]Manifest, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("%w: extensions directory cannot be empty", ErrLoadFailed)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read extensions directory (%s): %w", ErrLoadFailed, dir, err)
	}

	manifests := make(map[string]Manifest)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name(), FileName)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				l.logger.Debug("Skipping directory without manifest", "dir", entry.Name())
				continue
			}
			return nil, fmt.Errorf("%w: failed to read %s: %w", ErrLoadFailed, path, err)
		}

		var m Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrLoadFailed, path, err)
		}

		manifests[entry.Name()] = m
	}

	return manifests, nil
}
