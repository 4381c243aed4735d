package sidebar

import "fmt"

// NavigationLink is a navigation entry ready to render.
type NavigationLink struct {
	Title     string
	Permalink string
}

// DocNavigationLinkOptions parameterize ToDocNavigationLink.
type DocNavigationLinkOptions struct {
	// SidebarItemLabel is the label of the sidebar item pointing at the doc,
	// if any. It ranks below the doc's own front-matter labels.
	SidebarItemLabel *string
}

// ToDocNavigationLink renders a document as a navigation link. The title is
// the first defined value of: front-matter pagination label, front-matter
// sidebar label, the sidebar item's label, the document title. An explicitly
// empty front-matter label counts as defined.
func ToDocNavigationLink(doc DocMetadata, opts *DocNavigationLinkOptions) NavigationLink {
	title := doc.Title
	switch {
	case doc.FrontMatter.PaginationLabel != nil:
		title = *doc.FrontMatter.PaginationLabel
	case doc.FrontMatter.SidebarLabel != nil:
		title = *doc.FrontMatter.SidebarLabel
	case opts != nil && opts.SidebarItemLabel != nil:
		title = *opts.SidebarItemLabel
	}
	return NavigationLink{Title: title, Permalink: doc.Permalink}
}

// ToNavigationLink renders a navigation item as a link, looking up document
// metadata in docsByID. A nil item yields nil. Doc items and doc-linked
// categories fail when their document is missing from docsByID; that is a
// configuration error, not a soft case.
func ToNavigationLink(item Item, docsByID map[string]DocMetadata) (*NavigationLink, error) {
	if item == nil {
		return nil, nil
	}

	lookup := func(id string) (DocMetadata, error) {
		doc, ok := docsByID[id]
		if !ok {
			return DocMetadata{}, fmt.Errorf("no doc found with id=%s", id)
		}
		return doc, nil
	}

	switch it := item.(type) {
	case Category:
		switch link := it.Link.(type) {
		case GeneratedIndexLink:
			return &NavigationLink{Title: it.Label, Permalink: link.Permalink}, nil
		case DocLink:
			doc, err := lookup(link.ID)
			if err != nil {
				return nil, err
			}
			nav := ToDocNavigationLink(doc, &DocNavigationLinkOptions{SidebarItemLabel: &it.Label})
			return &nav, nil
		default:
			return nil, fmt.Errorf("navigation category %q carries no link", it.Label)
		}
	case Doc:
		doc, err := lookup(it.ID)
		if err != nil {
			return nil, err
		}
		opts := &DocNavigationLinkOptions{}
		if it.Label != "" {
			label := it.Label
			opts.SidebarItemLabel = &label
		}
		nav := ToDocNavigationLink(doc, opts)
		return &nav, nil
	default:
		return nil, fmt.Errorf("unexpected navigation item kind %q", item.Kind())
	}
}
