package release

// APIRelease represents a release record in the hosting API's native REST
// shape (snake_case fields, assets carrying a direct download reference).
type APIRelease struct {
	TagName     string     `json:"tag_name"`
	PublishedAt string     `json:"published_at"`
	Assets      []APIAsset `json:"assets"`
	Body        string     `json:"body"`
}

// APIAsset is a release asset in the hosting API's native REST shape.
type APIAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Normalize converts raw API release records into canonical ones, preserving
// order. Assets keep their names; the direct download reference becomes the
// canonical URL. No other transformation occurs.
func Normalize(raw []APIRelease) []Release {
	releases := make([]Release, 0, len(raw))
	for _, r := range raw {
		assets := make([]Asset, 0, len(r.Assets))
		for _, a := range r.Assets {
			assets = append(assets, Asset{
				Name: a.Name,
				URL:  a.BrowserDownloadURL,
			})
		}

		releases = append(releases, Release{
			TagName:     r.TagName,
			PublishedAt: r.PublishedAt,
			Assets:      assets,
			Body:        r.Body,
		})
	}

	return releases
}
