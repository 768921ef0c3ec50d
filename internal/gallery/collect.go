package gallery

import (
	"github.com/posit-dev/connect-gallery-action/internal/manifest"
)

// CollectTagsAndFeatures unions every manifest's tags and required features
// into two deduplicated sets. Ordering is imposed later by BuildOutput.
func CollectTagsAndFeatures(manifests map[string]manifest.Manifest) (tags, features map[string]struct{}) {
	tags = make(map[string]struct{})
	features = make(map[string]struct{})

	for _, m := range manifests {
		for _, t := range m.Extension.Tags {
			tags[t] = struct{}{}
		}
		for _, f := range m.Extension.RequiredFeatures {
			features[f] = struct{}{}
		}
	}

	return tags, features
}
