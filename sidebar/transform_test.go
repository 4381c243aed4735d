package sidebar_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/docfold/docnav/internal/testutil"
	"github.com/docfold/docnav/sidebar"
)

func guidesFixture(t *testing.T) []sidebar.Item {
	t.Helper()
	return testutil.MustItemsFromYAML(t, `
- type: doc
  id: intro
- type: category
  label: Guides
  link:
    type: doc
    id: guides/overview
  items:
    - type: doc
      id: guides/install
      label: Installation
    - type: category
      label: Advanced
      items:
        - type: doc
          id: guides/advanced
    - type: link
      href: https://example.com
      label: Example
- type: ref
  id: api/index
- type: doc
  id: outro
`)
}

func TestTransformIdentityPreservesStructure(t *testing.T) {
	items := guidesFixture(t)

	got := sidebar.Transform(items, func(item sidebar.Item) sidebar.Item { return item })

	if !reflect.DeepEqual(got, items) {
		t.Errorf("identity transform changed the tree:\ngot  %#v\nwant %#v", got, items)
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	items := guidesFixture(t)
	original := guidesFixture(t)

	sidebar.Transform(items, func(item sidebar.Item) sidebar.Item {
		if doc, ok := item.(sidebar.Doc); ok {
			doc.Label = "changed"
			return doc
		}
		return item
	})

	if !reflect.DeepEqual(items, original) {
		t.Errorf("transform mutated its input:\ngot  %#v\nwant %#v", items, original)
	}
}

func TestTransformRewritesEveryItem(t *testing.T) {
	items := guidesFixture(t)

	got := sidebar.Transform(items, func(item sidebar.Item) sidebar.Item {
		switch it := item.(type) {
		case sidebar.Doc:
			it.Label = strings.ToUpper(it.EffectiveLabel())
			return it
		case sidebar.Category:
			it.Label = strings.ToUpper(it.Label)
			return it
		default:
			return item
		}
	})

	docs := sidebar.CollectDocItems(got)
	for _, doc := range docs {
		if doc.Label != strings.ToUpper(doc.Label) {
			t.Errorf("doc %q label not rewritten: %q", doc.ID, doc.Label)
		}
	}
	cats := sidebar.CollectCategories(got)
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Label != "GUIDES" || cats[1].Label != "ADVANCED" {
		t.Errorf("category labels not rewritten: %q, %q", cats[0].Label, cats[1].Label)
	}
}

func TestTransformVisitsChildrenBeforeParent(t *testing.T) {
	items := testutil.MustItemsFromYAML(t, `
- type: category
  label: Outer
  items:
    - type: category
      label: Inner
      items:
        - type: doc
          id: leaf
`)

	var visited []string
	sidebar.Transform(items, func(item sidebar.Item) sidebar.Item {
		switch it := item.(type) {
		case sidebar.Doc:
			visited = append(visited, it.ID)
		case sidebar.Category:
			// The callback must see the already-rewritten children.
			visited = append(visited, it.Label)
		}
		return item
	})

	want := []string{"leaf", "Inner", "Outer"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visitation order = %v, want %v", visited, want)
	}
}

func TestTransformSeesRewrittenChildren(t *testing.T) {
	items := testutil.MustItemsFromYAML(t, `
- type: category
  label: Guides
  items:
    - type: doc
      id: a
`)

	got := sidebar.Transform(items, func(item sidebar.Item) sidebar.Item {
		switch it := item.(type) {
		case sidebar.Doc:
			it.Label = "renamed"
			return it
		case sidebar.Category:
			child := it.Items[0].(sidebar.Doc)
			if child.Label != "renamed" {
				t.Errorf("category callback saw stale child label %q", child.Label)
			}
			return it
		default:
			return item
		}
	})

	if got[0].(sidebar.Category).Items[0].(sidebar.Doc).Label != "renamed" {
		t.Error("rewritten child lost in rebuilt category")
	}
}

func TestTransformSidebars(t *testing.T) {
	sidebars := testutil.MustSidebarsFromYAML(t, `
docs:
  - type: doc
    id: intro
api:
  - type: doc
    id: api/index
`)

	got := sidebar.TransformSidebars(sidebars, func(item sidebar.Item) sidebar.Item {
		if doc, ok := item.(sidebar.Doc); ok {
			doc.Label = "x"
			return doc
		}
		return item
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 sidebars, got %d", len(got))
	}
	for name, items := range got {
		if items[0].(sidebar.Doc).Label != "x" {
			t.Errorf("sidebar %q not transformed", name)
		}
	}
}
