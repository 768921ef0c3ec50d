// Package manifest defines the extension manifest model and the loader that
// reads one manifest per extension directory.
package manifest

// Manifest represents the structure of a manifest.json file shipped in an
// extension directory. The extension declaration lives under the top-level
// "extension" key.
type Manifest struct {
	Extension Extension `json:"extension"`
}

// Extension is the declarative description of a single extension.
type Extension struct {
	// Name is the canonical name of the extension. It is the authoritative
	// identity used to match releases, independent of the directory name the
	// manifest was loaded from.
	Name string `json:"name"`

	// Title is a human-readable display name.
	Title string `json:"title"`

	// Description provides a short summary of what the extension does.
	Description string `json:"description"`

	// Homepage is the URL to the extension's documentation or source.
	Homepage string `json:"homepage"`

	// Version is the manifest-declared version. The sentinel value "0.0.0"
	// marks an extension that has not been released yet.
	Version string `json:"version"`

	// MinimumConnectVersion is the oldest Connect version the extension
	// supports. Used as the fallback when a release carries no metadata.
	MinimumConnectVersion string `json:"minimumConnectVersion"`

	// RequiredFeatures lists Connect features the extension depends on.
	RequiredFeatures []string `json:"requiredFeatures,omitempty"`

	// Category is an optional taxonomy bucket ID.
	Category string `json:"category,omitempty"`

	// Tags provides searchable keywords for the extension.
	Tags []string `json:"tags,omitempty"`

	// Environment maps runtime names (e.g. "python", "quarto") to version
	// requirement strings.
	Environment map[string]string `json:"environment,omitempty"`
}

// Unreleased reports whether the manifest declares the "0.0.0" sentinel
// version, meaning the extension must not appear in the gallery.
func (e Extension) Unreleased() bool {
	return e.Version == "0.0.0"
}
