// Package sidebar models documentation sidebars as trees of navigation items
// and provides the queries a site generator needs over them: flattened
// collections, a doc-to-sidebar index, previous/next navigation, and
// navigation-link title resolution.
//
// Input sidebars are assumed to be fully normalized: shorthand and
// autogenerated forms have already been expanded into explicit trees by the
// caller. Everything in this package is a pure query over immutable values;
// nothing here reads files or renders content.
package sidebar

import (
	"encoding/json"
	"sort"
)

// ItemKind discriminates the sidebar item variants.
type ItemKind string

const (
	KindDoc      ItemKind = "doc"
	KindRef      ItemKind = "ref"
	KindLink     ItemKind = "link"
	KindCategory ItemKind = "category"
)

// Item is a node in a sidebar tree. The variant set is closed: Doc, Ref,
// Link, and Category are the only implementations. Code walking a tree
// switches exhaustively on the concrete type.
type Item interface {
	Kind() ItemKind
	sidebarItem()
}

// Doc is a leaf referencing a document by id.
type Doc struct {
	// ID identifies the document, e.g. "guides/installation".
	ID string

	// Label is the display label. Empty means "use the ID".
	Label string
}

// EffectiveLabel returns the label, falling back to the id.
func (d Doc) EffectiveLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.ID
}

// Ref is structurally a Doc but semantically a cross-reference: it is never
// promoted into doc-id or navigation collections.
type Ref struct {
	ID    string
	Label string
}

// Link is an opaque external or internal link. It never contributes to
// doc-id or navigation collections.
type Link struct {
	Href  string
	Label string
}

// Category is an internal node grouping items. Its Items order defines
// traversal and navigation order. A category may itself be a navigation
// target via its Link; that participation is independent of its children,
// which are always traversed regardless.
type Category struct {
	Label string
	Items []Item

	// Link is nil for plain grouping categories.
	Link CategoryLink
}

func (Doc) Kind() ItemKind      { return KindDoc }
func (Ref) Kind() ItemKind      { return KindRef }
func (Link) Kind() ItemKind     { return KindLink }
func (Category) Kind() ItemKind { return KindCategory }

func (Doc) sidebarItem()      {}
func (Ref) sidebarItem()      {}
func (Link) sidebarItem()     {}
func (Category) sidebarItem() {}

// CategoryLinkKind discriminates the category link variants.
type CategoryLinkKind string

const (
	LinkKindDoc            CategoryLinkKind = "doc"
	LinkKindGeneratedIndex CategoryLinkKind = "generated-index"
)

// CategoryLink makes a category a navigation target in its own right.
// The variant set is closed: DocLink or GeneratedIndexLink.
type CategoryLink interface {
	LinkKind() CategoryLinkKind
	categoryLink()
}

// DocLink makes a category a proxy for the document with the given id.
type DocLink struct {
	ID string
}

// GeneratedIndexLink makes a category a proxy for a synthesized index page
// listing the category's contents.
type GeneratedIndexLink struct {
	Permalink string
}

func (DocLink) LinkKind() CategoryLinkKind            { return LinkKindDoc }
func (GeneratedIndexLink) LinkKind() CategoryLinkKind { return LinkKindGeneratedIndex }

func (DocLink) categoryLink()            {}
func (GeneratedIndexLink) categoryLink() {}

// Sidebars maps sidebar names to their ordered top-level items.
//
// Item order within a sidebar is load-bearing; the declaration order of
// sidebar names is not. Since Go maps are unordered, every operation that
// needs a deterministic "first sidebar" or cross-sidebar ordering iterates
// names in sorted order (see Names).
type Sidebars map[string][]Item

// Names returns the sidebar names in sorted order. This is the canonical
// iteration order for all cross-sidebar operations.
func (s Sidebars) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DocMetadata is the lightweight document record supplied by the documents
// subsystem when resolving a navigation link's title. The core only reads it.
type DocMetadata struct {
	Title     string
	Permalink string

	FrontMatter DocFrontMatter
}

// DocFrontMatter carries the front-matter labels that take precedence when
// rendering a navigation link. Pointer fields distinguish "absent" from an
// explicitly empty string; an explicit empty string counts as present.
type DocFrontMatter struct {
	PaginationLabel *string
	SidebarLabel    *string
}

// MarshalJSON encodes the item with an explicit "type" discriminant so tagged
// trees survive serialization.
func (d Doc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  ItemKind `json:"type"`
		ID    string   `json:"id"`
		Label string   `json:"label,omitempty"`
	}{KindDoc, d.ID, d.Label})
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  ItemKind `json:"type"`
		ID    string   `json:"id"`
		Label string   `json:"label,omitempty"`
	}{KindRef, r.ID, r.Label})
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  ItemKind `json:"type"`
		Href  string   `json:"href"`
		Label string   `json:"label"`
	}{KindLink, l.Href, l.Label})
}

func (c Category) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(struct {
		Type  ItemKind     `json:"type"`
		Label string       `json:"label"`
		Items []Item       `json:"items"`
		Link  CategoryLink `json:"link,omitempty"`
	}{KindCategory, c.Label, items, c.Link})
}

func (l DocLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type CategoryLinkKind `json:"type"`
		ID   string           `json:"id"`
	}{LinkKindDoc, l.ID})
}

func (g GeneratedIndexLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      CategoryLinkKind `json:"type"`
		Permalink string           `json:"permalink"`
	}{LinkKindGeneratedIndex, g.Permalink})
}
