package sidebar

import "fmt"

// DocNavigation is the previous/next neighborhood of a document within its
// sidebar. Previous and Next are nil at the edges or when the document is
// not part of any navigation list; SidebarName is empty when the document is
// not displayed in any sidebar.
type DocNavigation struct {
	SidebarName string
	Previous    Item
	Next        Item
}

// DocNavigationOptions parameterize a DocNavigation query.
type DocNavigationOptions struct {
	// DocID is the target document.
	DocID string

	// DisplayedSidebar is the document's displayed-sidebar front matter,
	// three-valued: nil means "not specified, derive from ownership";
	// a pointer to the empty string means "explicitly opted out of any
	// sidebar"; a pointer to a name means that sidebar must exist.
	DisplayedSidebar *string

	// UnlistedIDs are document ids excluded from rendered navigation.
	// Filtering happens before neighbor lookup, so a removed neighbor is
	// skipped entirely rather than leaving a gap.
	UnlistedIDs map[string]struct{}
}

// DocNavigation resolves the previous/next neighbors of a document.
//
// The effective sidebar is the displayed sidebar when specified, otherwise
// the sidebar owning the doc id. A doc owned by no sidebar yields the empty
// navigation, not an error; naming a sidebar that does not exist is a
// configuration error.
func (x *Index) DocNavigation(opts DocNavigationOptions) (DocNavigation, error) {
	sidebarName, err := x.resolveSidebarName(opts)
	if err != nil {
		return DocNavigation{}, err
	}
	if sidebarName == "" {
		return DocNavigation{}, nil
	}

	navigation := FilterUnlisted(x.navigations[sidebarName], opts.UnlistedIDs)
	prev, next := neighbors(navigation, func(item Item) bool {
		id, ok := navigationItemID(item)
		return ok && id == opts.DocID
	})
	return DocNavigation{SidebarName: sidebarName, Previous: prev, Next: next}, nil
}

func (x *Index) resolveSidebarName(opts DocNavigationOptions) (string, error) {
	if opts.DisplayedSidebar != nil {
		name := *opts.DisplayedSidebar
		if name == "" {
			// Explicit opt-out.
			return "", nil
		}
		if _, ok := x.sidebars[name]; !ok {
			return "", fmt.Errorf(
				"doc with id=%s wants to display sidebar %s but a sidebar with this name doesn't exist",
				opts.DocID, name)
		}
		return name, nil
	}
	name, _ := x.SidebarNameByDocID(opts.DocID)
	return name, nil
}

// CategoryGeneratedIndexNavigation resolves the previous/next neighbors of a
// generated category index page, identified by its permalink. Unlisted-id
// filtering does not apply: generated indexes are synthesized, not authored
// documents.
func (x *Index) CategoryGeneratedIndexNavigation(permalink string) (DocNavigation, error) {
	for _, gen := range x.generatedIndexes {
		if gen.Permalink() != permalink {
			continue
		}
		navigation := x.navigations[gen.SidebarName]
		prev, next := neighbors(navigation, func(item Item) bool {
			cat, ok := item.(Category)
			if !ok {
				return false
			}
			link, ok := cat.Link.(GeneratedIndexLink)
			return ok && link.Permalink == permalink
		})
		return DocNavigation{SidebarName: gen.SidebarName, Previous: prev, Next: next}, nil
	}
	return DocNavigation{}, fmt.Errorf("no category generated index page found for permalink=%s", permalink)
}

// neighbors returns the items immediately around the first match in the
// navigation list, or nils when the match is absent or at an edge.
func neighbors(navigation []Item, match func(Item) bool) (prev, next Item) {
	for i, item := range navigation {
		if !match(item) {
			continue
		}
		if i > 0 {
			prev = navigation[i-1]
		}
		if i+1 < len(navigation) {
			next = navigation[i+1]
		}
		return prev, next
	}
	return nil, nil
}
