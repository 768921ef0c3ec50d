// Package gallery implements the transformation pipeline that reconciles
// extension manifests with published releases into the gallery document.
package gallery

// Category is a taxonomy bucket for extensions, sourced from static
// configuration and copied into the output untouched.
type Category struct {
	ID          string `json:"id" toml:"id" yaml:"id"`
	Title       string `json:"title" toml:"title" yaml:"title"`
	Description string `json:"description" toml:"description" yaml:"description"`
}

// Config holds the gallery-level configuration loaded from the category
// config file.
type Config struct {
	Categories []Category `json:"categories" toml:"categories" yaml:"categories"`
}

// Version is the derived record for one release belonging to one extension.
type Version struct {
	// Version is the semantic version extracted from the release tag.
	Version string `json:"version"`

	// Released is the release's publication timestamp, carried verbatim.
	Released string `json:"released"`

	// URL is the download location of the extension's archive asset.
	URL string `json:"url"`

	// MinimumConnectVersion is always populated, from release metadata when
	// present, otherwise from the manifest.
	MinimumConnectVersion string `json:"minimumConnectVersion"`

	// RequiredFeatures is omitted entirely when neither the release metadata
	// nor the manifest supplies it.
	RequiredFeatures []string `json:"requiredFeatures,omitempty"`

	// RequiredEnvironment is omitted entirely when neither the release
	// metadata nor the manifest supplies it.
	RequiredEnvironment map[string]string `json:"requiredEnvironment,omitempty"`
}

// Extension is the published view of one extension. It exists only when at
// least one matching, valid release was found.
type Extension struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Homepage    string `json:"homepage"`

	// LatestVersion always equals Versions[0] after the descending sort.
	LatestVersion Version `json:"latestVersion"`

	// Versions holds every matching release, newest first.
	Versions []Version `json:"versions"`

	// Tags is always present, as an empty list when the manifest declares none.
	Tags []string `json:"tags"`

	// Category is present only when the manifest declares one.
	Category string `json:"category,omitempty"`
}

// Output is the final gallery document.
type Output struct {
	Categories       []Category  `json:"categories"`
	Tags             []string    `json:"tags"`
	RequiredFeatures []string    `json:"requiredFeatures"`
	Extensions       []Extension `json:"extensions"`
}
