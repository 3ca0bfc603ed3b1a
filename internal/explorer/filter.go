// ABOUTME: Fuzzy name filter over listing entries using sahilm/fuzzy
// ABOUTME: Matches keep backend order; the score only decides membership

package explorer

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/sda-go/pkg/api"
)

// entrySource adapts a listing to fuzzy.Source.
type entrySource []api.DirEntry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// Filter returns the entries whose names fuzzy-match pattern, in their
// original order. A blank pattern returns every entry.
func Filter(entries []api.DirEntry, pattern string) []api.DirEntry {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return slices.Clone(entries)
	}

	matches := fuzzy.FindFrom(pattern, entrySource(entries))
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	slices.Sort(idx)

	out := make([]api.DirEntry, len(idx))
	for i, j := range idx {
		out[i] = entries[j]
	}
	return out
}
