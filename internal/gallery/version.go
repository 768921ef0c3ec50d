package gallery

import (
	"encoding/json"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/posit-dev/connect-gallery-action/internal/manifest"
	"github.com/posit-dev/connect-gallery-action/internal/release"
)

// archiveSuffix is appended to an extension name to form the asset every
// release of that extension must carry.
const archiveSuffix = ".tar.gz"

// bodyMetadata is the optional JSON document newer releases embed in their
// free-text body.
type bodyMetadata struct {
	MinimumConnectVersion string            `json:"minimumConnectVersion"`
	RequiredFeatures      []string          `json:"requiredFeatures"`
	RequiredEnvironment   map[string]string `json:"requiredEnvironment"`
}

// ExtractVersion matches a canonical release against an extension and derives
// its version record. The second return value is false when the release does
// not belong to the extension: wrong tag prefix, missing archive asset, or a
// tag suffix that is not a valid semantic version. Pure function of its inputs.
func ExtractVersion(rel release.Release, name string, ext manifest.Extension) (Version, bool) {
	// A release belongs to exactly the extension named in its tag prefix.
	if !strings.HasPrefix(rel.TagName, name+"@v") {
		return Version{}, false
	}
	version := rel.TagName[strings.Index(rel.TagName, "@v")+len("@v"):]

	url, ok := findAsset(rel.Assets, name+archiveSuffix)
	if !ok {
		return Version{}, false
	}

	var meta bodyMetadata
	if err := json.Unmarshal([]byte(rel.Body), &meta); err != nil {
		// Older releases carry plain-text notes. Fall back to the manifest.
		meta = bodyMetadata{}
	}

	if _, err := semver.StrictNewVersion(version); err != nil {
		return Version{}, false
	}

	return Version{
		Version:               version,
		Released:              rel.PublishedAt,
		URL:                   url,
		MinimumConnectVersion: fallbackString(meta.MinimumConnectVersion, ext.MinimumConnectVersion),
		RequiredFeatures:      fallbackSlice(meta.RequiredFeatures, ext.RequiredFeatures),
		RequiredEnvironment:   fallbackMap(meta.RequiredEnvironment, ext.Environment),
	}, true
}

// findAsset returns the URL of the asset with the exact given name.
func findAsset(assets []release.Asset, name string) (string, bool) {
	for _, a := range assets {
		if a.Name == name {
			return a.URL, true
		}
	}
	return "", false
}

// fallbackString prefers the non-empty release-embedded value over the
// manifest value. The result is always populated when the manifest is.
func fallbackString(body, manifest string) string {
	if body != "" {
		return body
	}
	return manifest
}

// fallbackSlice prefers a non-empty release-embedded list, then a non-empty
// manifest list, and otherwise yields nil so the field is omitted entirely.
func fallbackSlice(body, manifest []string) []string {
	if len(body) > 0 {
		return body
	}
	if len(manifest) > 0 {
		return manifest
	}
	return nil
}

// fallbackMap prefers a present release-embedded map, then a present manifest
// map, and otherwise yields nil so the field is omitted entirely.
func fallbackMap(body, manifest map[string]string) map[string]string {
	if body != nil {
		return body
	}
	if manifest != nil {
		return manifest
	}
	return nil
}
