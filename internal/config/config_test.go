package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posit-dev/connect-gallery-action/internal/gallery"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FormatsByExtension(t *testing.T) {
	t.Parallel()

	expected := gallery.Config{Categories: []gallery.Category{
		{ID: "data", Title: "Data", Description: "Data tooling"},
	}}

	tests := []struct {
		name     string
		fileName string
		content  string
	}{
		{
			name:     "toml",
			fileName: "gallery.toml",
			content: `[[categories]]
id = "data"
title = "Data"
description = "Data tooling"
`,
		},
		{
			name:     "yaml",
			fileName: "gallery.yaml",
			content: `categories:
  - id: data
    title: Data
    description: Data tooling
`,
		},
		{
			name:     "json",
			fileName: "gallery.json",
			content:  `{"categories": [{"id": "data", "title": "Data", "description": "Data tooling"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tc.fileName, tc.content)

			cfg, err := (&DefaultLoader{}).Load(path)
			require.NoError(t, err)
			assert.Equal(t, expected, cfg)
		})
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "gallery.ini", "categories=")

	_, err := (&DefaultLoader{}).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigLoadFailed)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := (&DefaultLoader{}).Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigLoadFailed)
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := (&DefaultLoader{}).Load("  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigLoadFailed)
}

func TestLoad_MalformedContent(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "gallery.json", `{"categories": `)

	_, err := (&DefaultLoader{}).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigLoadFailed)
}
