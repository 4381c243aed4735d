package sidebar

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Index precomputes the per-sidebar navigation lists and cross-sidebar
// lookups for a fully-normalized sidebar set. It is immutable after
// construction and safe for concurrent queries.
type Index struct {
	sidebars Sidebars
	names    []string

	// navigations holds CollectNavigation per sidebar.
	navigations map[string][]Item

	// docIDToSidebar maps every referenced doc id to its owning sidebar.
	// First match wins under sorted-name iteration if an id appears in
	// several sidebars; uniqueness is assumed, not enforced.
	docIDToSidebar map[string]string

	generatedIndexes []CategoryGeneratedIndex
}

// CategoryGeneratedIndex is a category whose link is a generated index,
// together with the sidebar that owns it.
type CategoryGeneratedIndex struct {
	SidebarName string
	Category    Category
}

// Permalink returns the generated index page's permalink.
func (c CategoryGeneratedIndex) Permalink() string {
	return c.Category.Link.(GeneratedIndexLink).Permalink
}

// NewIndex builds an Index from the sidebar set. Construction walks every
// sidebar once; all queries afterwards are lookups.
func NewIndex(sidebars Sidebars) *Index {
	x := &Index{
		sidebars:       sidebars,
		names:          sidebars.Names(),
		navigations:    make(map[string][]Item, len(sidebars)),
		docIDToSidebar: make(map[string]string),
	}

	for _, name := range x.names {
		items := sidebars[name]
		x.navigations[name] = CollectNavigation(items)

		for _, id := range CollectDocIDs(items) {
			if _, seen := x.docIDToSidebar[id]; !seen {
				x.docIDToSidebar[id] = name
			}
		}

		for _, cat := range CollectCategories(items) {
			if _, ok := cat.Link.(GeneratedIndexLink); ok {
				x.generatedIndexes = append(x.generatedIndexes, CategoryGeneratedIndex{
					SidebarName: name,
					Category:    cat,
				})
			}
		}
	}

	return x
}

// FirstDocIDOfFirstSidebar returns the first collected doc id of the first
// sidebar (sorted-name order). ok is false when the sidebar set is empty or
// the first sidebar references no documents.
func (x *Index) FirstDocIDOfFirstSidebar() (id string, ok bool) {
	if len(x.names) == 0 {
		return "", false
	}
	ids := CollectDocIDs(x.sidebars[x.names[0]])
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// SidebarNameByDocID returns the sidebar owning docID. ok is false when no
// sidebar references the id; that is a soft case, not an error.
func (x *Index) SidebarNameByDocID(docID string) (name string, ok bool) {
	name, ok = x.docIDToSidebar[docID]
	return name, ok
}

// CategoryGeneratedIndexList returns every category across all sidebars whose
// link is a generated index, in flatten order per sidebar, sidebars in
// sorted-name order. The returned slice must not be mutated.
func (x *Index) CategoryGeneratedIndexList() []CategoryGeneratedIndex {
	return x.generatedIndexes
}

// indexCache memoizes Index construction per sidebar-set fingerprint. The
// working set is tiny in practice (one entry per docs version).
var indexCache, _ = lru.New[string, *Index](16)

// LoadIndex returns a memoized Index for the sidebar set, building it on
// first sight. Two calls with structurally equal sidebars share one Index.
// Callers must not mutate the sidebars after loading.
func LoadIndex(sidebars Sidebars) *Index {
	key, err := fingerprint(sidebars)
	if err != nil {
		// An unencodable sidebar set cannot occur with the closed variant
		// set; fall back to an uncached build rather than failing the query.
		return NewIndex(sidebars)
	}
	if x, ok := indexCache.Get(key); ok {
		return x
	}
	x := NewIndex(sidebars)
	indexCache.Add(key, x)
	return x
}

// fingerprint derives a stable content key for a sidebar set. encoding/json
// emits map keys in sorted order, so structurally equal sets encode
// identically.
func fingerprint(sidebars Sidebars) (string, error) {
	raw, err := json.Marshal(sidebars)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
