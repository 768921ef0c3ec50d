package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posit-dev/connect-gallery-action/internal/manifest"
	"github.com/posit-dev/connect-gallery-action/internal/release"
)

func testExtension() manifest.Extension {
	return manifest.Extension{
		Name:                  "publisher-stocks",
		Title:                 "Stock Explorer",
		Description:           "Explore stock prices.",
		Homepage:              "https://example.com/publisher-stocks",
		Version:               "1.1.0",
		MinimumConnectVersion: "2024.01.0",
	}
}

func testRelease(tag string) release.Release {
	return release.Release{
		TagName:     tag,
		PublishedAt: "2025-03-01T12:00:00Z",
		Assets: []release.Asset{
			{Name: "publisher-stocks.tar.gz", URL: "https://example.com/download/publisher-stocks.tar.gz"},
		},
		Body: "",
	}
}

func TestExtractVersion_RejectsNonMatchingTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  string
	}{
		{name: "different extension", tag: "publisher-maps@v1.0.0"},
		{name: "missing @v separator", tag: "publisher-stocks-1.0.0"},
		{name: "name is a prefix of the tagged extension", tag: "publisher-stocks-pro@v1.0.0"},
		{name: "empty tag", tag: ""},
		{name: "bare name", tag: "publisher-stocks"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := ExtractVersion(testRelease(tc.tag), "publisher-stocks", testExtension())
			assert.False(t, ok)
		})
	}
}

func TestExtractVersion_RejectsMissingArchiveAsset(t *testing.T) {
	t.Parallel()

	rel := testRelease("publisher-stocks@v1.0.0")
	rel.Assets = []release.Asset{
		{Name: "publisher-stocks.zip", URL: "https://example.com/wrong-format"},
		{Name: "checksums.txt", URL: "https://example.com/checksums"},
	}

	_, ok := ExtractVersion(rel, "publisher-stocks", testExtension())
	assert.False(t, ok)
}

func TestExtractVersion_RejectsInvalidSemanticVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  string
	}{
		{name: "two components", tag: "publisher-stocks@v1.0"},
		{name: "single component", tag: "publisher-stocks@v1"},
		{name: "not a version at all", tag: "publisher-stocks@vlatest"},
		{name: "trailing garbage", tag: "publisher-stocks@v1.0.0.0"},
		{name: "empty suffix", tag: "publisher-stocks@v"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := ExtractVersion(testRelease(tc.tag), "publisher-stocks", testExtension())
			assert.False(t, ok)
		})
	}
}

func TestExtractVersion_AcceptsPreReleaseAndBuildMetadata(t *testing.T) {
	t.Parallel()

	v, ok := ExtractVersion(testRelease("publisher-stocks@v1.2.0-rc.1+build.5"), "publisher-stocks", testExtension())
	require.True(t, ok)
	assert.Equal(t, "1.2.0-rc.1+build.5", v.Version)
}

func TestExtractVersion_PopulatesFromRelease(t *testing.T) {
	t.Parallel()

	rel := testRelease("publisher-stocks@v1.2.3")

	v, ok := ExtractVersion(rel, "publisher-stocks", testExtension())
	require.True(t, ok)
	assert.Equal(t, "1.2.3", v.Version)
	assert.Equal(t, "2025-03-01T12:00:00Z", v.Released)
	assert.Equal(t, "https://example.com/download/publisher-stocks.tar.gz", v.URL)
}

func TestExtractVersion_BodyMetadataWinsOverManifest(t *testing.T) {
	t.Parallel()

	rel := testRelease("publisher-stocks@v1.2.3")
	rel.Body = `{
		"minimumConnectVersion": "2025.06.0",
		"requiredFeatures": ["API Publishing"],
		"requiredEnvironment": {"python": ">=3.11"}
	}`

	ext := testExtension()
	ext.RequiredFeatures = []string{"Manifest Feature"}
	ext.Environment = map[string]string{"python": ">=3.8"}

	v, ok := ExtractVersion(rel, "publisher-stocks", ext)
	require.True(t, ok)
	assert.Equal(t, "2025.06.0", v.MinimumConnectVersion)
	assert.Equal(t, []string{"API Publishing"}, v.RequiredFeatures)
	assert.Equal(t, map[string]string{"python": ">=3.11"}, v.RequiredEnvironment)
}

func TestExtractVersion_MalformedBodyFallsBackToManifest(t *testing.T) {
	t.Parallel()

	rel := testRelease("publisher-stocks@v1.2.3")
	rel.Body = "Initial release.\n\nSee the changelog for details."

	ext := testExtension()
	ext.RequiredFeatures = []string{"Manifest Feature"}
	ext.Environment = map[string]string{"quarto": ">=1.4"}

	v, ok := ExtractVersion(rel, "publisher-stocks", ext)
	require.True(t, ok)
	assert.Equal(t, "2024.01.0", v.MinimumConnectVersion)
	assert.Equal(t, []string{"Manifest Feature"}, v.RequiredFeatures)
	assert.Equal(t, map[string]string{"quarto": ">=1.4"}, v.RequiredEnvironment)
}

func TestExtractVersion_EmptyBodyValuesFallBack(t *testing.T) {
	t.Parallel()

	rel := testRelease("publisher-stocks@v1.2.3")
	rel.Body = `{"minimumConnectVersion": "", "requiredFeatures": []}`

	ext := testExtension()
	ext.RequiredFeatures = []string{"Manifest Feature"}

	v, ok := ExtractVersion(rel, "publisher-stocks", ext)
	require.True(t, ok)
	assert.Equal(t, "2024.01.0", v.MinimumConnectVersion)
	assert.Equal(t, []string{"Manifest Feature"}, v.RequiredFeatures)
}

func TestExtractVersion_OptionalFieldsAbsentWhenUnsupplied(t *testing.T) {
	t.Parallel()

	v, ok := ExtractVersion(testRelease("publisher-stocks@v1.2.3"), "publisher-stocks", testExtension())
	require.True(t, ok)
	assert.Nil(t, v.RequiredFeatures)
	assert.Nil(t, v.RequiredEnvironment)
}
