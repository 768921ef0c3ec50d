package gallery

import (
	"maps"
	"slices"
)

// BuildOutput assembles the final gallery document: categories are copied
// from the configuration, the tag and feature sets become sorted lists, and
// the extension list is attached unchanged. All filtering already happened
// in BuildExtensions.
func BuildOutput(extensions []Extension, cfg Config, tags, features map[string]struct{}) Output {
	categories := cfg.Categories
	if categories == nil {
		categories = []Category{}
	}
	if extensions == nil {
		extensions = []Extension{}
	}

	return Output{
		Categories:       categories,
		Tags:             sortedKeys(tags),
		RequiredFeatures: sortedKeys(features),
		Extensions:       extensions,
	}
}

// sortedKeys flattens a set into an ascending list. Plain lexicographic
// order, unlike the locale-aware ordering used for extension names.
func sortedKeys(set map[string]struct{}) []string {
	keys := slices.Sorted(maps.Keys(set))
	if keys == nil {
		keys = []string{}
	}
	return keys
}
