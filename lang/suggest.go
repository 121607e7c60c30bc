package lang

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit dotted keys of doc that fuzzy-match dotted,
// best match first. A limit <= 0 returns every match.
func Suggest(doc *Document, dotted string, limit int) []string {
	if dotted == "" {
		return nil
	}

	candidates := slices.Collect(doc.Keys())

	matches := fuzzy.Find(dotted, candidates)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.Str
	}

	return result
}
