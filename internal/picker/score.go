// Package picker is the interactive task selector: a pure scoring function
// for narrowing the catalog against typed input, wrapped in a small
// bubbletea UI that reloads the catalog when the runner file changes.
package picker

import "strings"

// Score tiers. Shifted far past any positional value so a later-positioned
// exact match always outranks an earlier-positioned prefix match, whatever
// the catalog size.
const (
	tierSubstring int64 = 1 << 32
	tierPrefix    int64 = 2 << 32
	tierExact     int64 = 3 << 32
)

// Score ranks candidate name at position pos (of total entries) against the
// typed input. Higher is better. ok=false excludes the candidate. Empty
// input matches everything, ranked by catalog position alone so the listing
// order is preserved until the user types.
func Score(input, name string, pos, total int) (int64, bool) {
	positional := int64(total - pos)

	if input == "" {
		return positional, true
	}

	query := strings.ToLower(input)
	candidate := strings.ToLower(name)

	switch {
	case candidate == query:
		return tierExact + positional, true
	case strings.HasPrefix(candidate, query):
		return tierPrefix + positional, true
	case strings.Contains(candidate, query):
		return tierSubstring + positional, true
	default:
		return 0, false
	}
}
