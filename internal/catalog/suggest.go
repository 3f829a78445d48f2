package catalog

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion
const suggestThreshold = 0.8

// Suggest returns up to limit catalog names that look like name, best first.
// Used to answer "did you mean" when a lookup misses.
func (c *Catalog) Suggest(name string, limit int) []string {
	if limit <= 0 || name == "" {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	needle := strings.ToLower(name)
	var candidates []scored
	for _, n := range c.order {
		score := matchr.JaroWinkler(needle, strings.ToLower(n), false)
		if score >= suggestThreshold {
			candidates = append(candidates, scored{name: n, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	names := make([]string, len(candidates))
	for i, s := range candidates {
		names[i] = s.name
	}
	return names
}
