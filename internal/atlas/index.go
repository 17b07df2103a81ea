package atlas

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Index maps normalized entry names to the names the Source knows them by.
// It is built once and never modified, so lookups need no lock.
type Index struct {
	entries map[string]string
}

// BuildIndex enumerates src once.
func BuildIndex(src Source) (*Index, error) {
	names, err := src.Entries()
	if err != nil {
		return nil, fmt.Errorf("atlas: build index: %w", err)
	}

	idx := &Index{entries: make(map[string]string, len(names))}
	for _, name := range names {
		idx.entries[normalize(name)] = name
	}
	return idx, nil
}

// Lookup returns the source name for an entry, or ("", false). A ".png"
// name that is not in the atlas falls back to its ".tga" sibling.
func (idx *Index) Lookup(name string) (string, bool) {
	name = normalize(name)
	if src, ok := idx.entries[name]; ok {
		return src, true
	}
	if ext := path.Ext(name); strings.EqualFold(ext, ".png") {
		src, ok := idx.entries[strings.TrimSuffix(name, ext)+".tga"]
		return src, ok
	}
	return "", false
}

// Has reports whether name, or its ".tga" sibling, is an entry of the atlas.
func (idx *Index) Has(name string) bool {
	_, ok := idx.Lookup(name)
	return ok
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Names returns all normalized entry names, sorted.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for name := range idx.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalize turns "big_items\bitem_1.png" or "./x.png" into slash form.
func normalize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(name, "./")
}
