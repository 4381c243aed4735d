package sidebar

// FirstLinkType discriminates the two concrete navigation targets a sidebar
// can open on.
type FirstLinkType string

const (
	FirstLinkDoc            FirstLinkType = "doc"
	FirstLinkGeneratedIndex FirstLinkType = "generated-index"
)

// FirstLink is the first concretely navigable target reachable from the top
// of a sidebar. ID is set for doc targets, Permalink for generated indexes.
type FirstLink struct {
	Type      FirstLinkType
	ID        string
	Permalink string
	Label     string
}

// FirstLink finds the first navigable target of the named sidebar: the first
// Doc item, or the first link-bearing category, descending depth-first into
// link-less categories before moving on to the next sibling. Link and Ref
// items are transparent at every level. ok is false when the sidebar does
// not exist or nothing in it is navigable.
func (x *Index) FirstLink(sidebarName string) (link FirstLink, ok bool) {
	items, exists := x.sidebars[sidebarName]
	if !exists {
		return FirstLink{}, false
	}
	return firstLink(items)
}

func firstLink(items []Item) (FirstLink, bool) {
	for _, item := range items {
		switch it := item.(type) {
		case Doc:
			return FirstLink{Type: FirstLinkDoc, ID: it.ID, Label: it.EffectiveLabel()}, true
		case Category:
			switch catLink := it.Link.(type) {
			case DocLink:
				return FirstLink{Type: FirstLinkDoc, ID: catLink.ID, Label: it.Label}, true
			case GeneratedIndexLink:
				return FirstLink{Type: FirstLinkGeneratedIndex, Permalink: catLink.Permalink, Label: it.Label}, true
			default:
				if link, ok := firstLink(it.Items); ok {
					return link, true
				}
			}
		}
	}
	return FirstLink{}, false
}
