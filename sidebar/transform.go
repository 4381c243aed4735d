package sidebar

// UpdateFunc rewrites a single sidebar item during a Transform. It may return
// the item unchanged, a modified copy, or a different variant entirely; it
// must not mutate its argument's nested slices in place.
type UpdateFunc func(Item) Item

// Transform applies fn to every item in the tree and returns the rebuilt
// forest. A category's children are transformed first, then fn is applied to
// the category carrying the already-rewritten children. The input is never
// mutated; containers are rebuilt on the way up.
func Transform(items []Item, fn UpdateFunc) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = transformItem(item, fn)
	}
	return out
}

func transformItem(item Item, fn UpdateFunc) Item {
	if cat, ok := item.(Category); ok {
		cat.Items = Transform(cat.Items, fn)
		return fn(cat)
	}
	return fn(item)
}

// TransformSidebars applies Transform to every sidebar in the mapping,
// preserving the key set.
func TransformSidebars(sidebars Sidebars, fn UpdateFunc) Sidebars {
	out := make(Sidebars, len(sidebars))
	for name, items := range sidebars {
		out[name] = Transform(items, fn)
	}
	return out
}
