package sidebar

// Flatten walks the forest in pre-order and returns every item at its
// position: each item appears once, a category before its descendants,
// siblings in declaration order. Categories are descended into whether or not
// they carry a link.
func Flatten(items []Item) []Item {
	var out []Item
	var walk func([]Item)
	walk = func(items []Item) {
		for _, item := range items {
			out = append(out, item)
			if cat, ok := item.(Category); ok {
				walk(cat.Items)
			}
		}
	}
	walk(items)
	return out
}

// CollectDocItems returns all Doc items in flatten order.
func CollectDocItems(items []Item) []Doc {
	var out []Doc
	for _, item := range Flatten(items) {
		if doc, ok := item.(Doc); ok {
			out = append(out, doc)
		}
	}
	return out
}

// CollectCategories returns all Category items in flatten order: parents
// before descendants, siblings in declaration order.
func CollectCategories(items []Item) []Category {
	var out []Category
	for _, item := range Flatten(items) {
		if cat, ok := item.(Category); ok {
			out = append(out, cat)
		}
	}
	return out
}

// CollectLinks returns all Link items in flatten order.
func CollectLinks(items []Item) []Link {
	var out []Link
	for _, item := range Flatten(items) {
		if link, ok := item.(Link); ok {
			out = append(out, link)
		}
	}
	return out
}

// CollectRefs returns all Ref items in flatten order.
func CollectRefs(items []Item) []Ref {
	var out []Ref
	for _, item := range Flatten(items) {
		if ref, ok := item.(Ref); ok {
			out = append(out, ref)
		}
	}
	return out
}

// CollectDocIDs returns the document ids referenced by the sidebar: the id of
// every Doc item plus the id of every category doc-link, in flatten order. A
// category's doc-link id is emitted at the category's own position, before
// any of its children's ids. Ref and Link items contribute nothing.
func CollectDocIDs(items []Item) []string {
	var out []string
	for _, item := range Flatten(items) {
		switch it := item.(type) {
		case Doc:
			out = append(out, it.ID)
		case Category:
			if link, ok := it.Link.(DocLink); ok {
				out = append(out, link.ID)
			}
		}
	}
	return out
}

// CollectNavigation returns the sidebar's navigation list: every Doc item and
// every link-bearing category, in flatten order. Plain Link/Ref items and
// link-less categories are skipped, but their descendants are still visited
// and may qualify on their own.
func CollectNavigation(items []Item) []Item {
	var out []Item
	for _, item := range Flatten(items) {
		switch it := item.(type) {
		case Doc:
			out = append(out, it)
		case Category:
			if it.Link != nil {
				out = append(out, it)
			}
		}
	}
	return out
}

// CollectSidebarsDocIDs applies CollectDocIDs to every sidebar, preserving
// the key set.
func CollectSidebarsDocIDs(sidebars Sidebars) map[string][]string {
	out := make(map[string][]string, len(sidebars))
	for name, items := range sidebars {
		out[name] = CollectDocIDs(items)
	}
	return out
}

// CollectSidebarsNavigations applies CollectNavigation to every sidebar,
// preserving the key set.
func CollectSidebarsNavigations(sidebars Sidebars) map[string][]Item {
	out := make(map[string][]Item, len(sidebars))
	for name, items := range sidebars {
		out[name] = CollectNavigation(items)
	}
	return out
}

// navigationItemID returns the id a navigation item answers to: a Doc's own
// id, or the doc-link id of a link-bearing category. Generated-index
// categories have no doc id.
func navigationItemID(item Item) (string, bool) {
	switch it := item.(type) {
	case Doc:
		return it.ID, true
	case Category:
		if link, ok := it.Link.(DocLink); ok {
			return link.ID, true
		}
	}
	return "", false
}

// FilterUnlisted removes every navigation item whose identifying doc id is in
// unlistedIDs. Callers rendering sidebars can reuse this to apply the exact
// exclusion rule navigation uses. Items without a doc id (generated-index
// categories) are always kept.
func FilterUnlisted(navigation []Item, unlistedIDs map[string]struct{}) []Item {
	if len(unlistedIDs) == 0 {
		return navigation
	}
	out := make([]Item, 0, len(navigation))
	for _, item := range navigation {
		if id, ok := navigationItemID(item); ok {
			if _, unlisted := unlistedIDs[id]; unlisted {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
