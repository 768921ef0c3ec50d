package gallery

import (
	"sort"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/posit-dev/connect-gallery-action/internal/manifest"
	"github.com/posit-dev/connect-gallery-action/internal/release"
)

// BuildExtensions derives the published extension list from the loaded
// manifests and the canonical releases. Extensions with the unreleased
// sentinel version or without any matching valid release are excluded.
// Never errors: non-matching releases are simply left out.
func BuildExtensions(manifests map[string]manifest.Manifest, releases []release.Release) []Extension {
	extensions := make([]Extension, 0, len(manifests))

	// Manifests are keyed by directory name, but the declared name is the
	// identity used for matching, so iterate by value.
	for _, m := range manifests {
		ext := m.Extension
		if ext.Unreleased() {
			continue
		}

		var versions []Version
		for _, rel := range releases {
			if v, ok := ExtractVersion(rel, ext.Name, ext); ok {
				versions = append(versions, v)
			}
		}
		if len(versions) == 0 {
			continue
		}
		sortVersions(versions)

		tags := ext.Tags
		if tags == nil {
			tags = []string{}
		}

		extensions = append(extensions, Extension{
			Name:          ext.Name,
			Title:         ext.Title,
			Description:   ext.Description,
			Homepage:      ext.Homepage,
			LatestVersion: versions[0],
			Versions:      versions,
			Tags:          tags,
			Category:      ext.Category,
		})
	}

	// Names are sorted with locale-aware collation, matching how the gallery
	// front end orders them.
	collator := collate.New(language.Und)
	sort.Slice(extensions, func(i, j int) bool {
		return collator.CompareString(extensions[i].Name, extensions[j].Name) < 0
	})

	return extensions
}

// sortVersions orders versions by descending semantic-version precedence.
// Every version string was validated during extraction.
func sortVersions(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, err := semver.StrictNewVersion(versions[i].Version)
		if err != nil {
			return false
		}
		vj, err := semver.StrictNewVersion(versions[j].Version)
		if err != nil {
			return true
		}
		return vi.GreaterThan(vj)
	})
}
