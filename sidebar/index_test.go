package sidebar_test

import (
	"reflect"
	"testing"

	"github.com/docfold/docnav/internal/testutil"
	"github.com/docfold/docnav/sidebar"
)

const multiSidebarFixture = `
api:
  - type: doc
    id: api/index
  - type: category
    label: Endpoints
    link:
      type: generated-index
      permalink: /api/category/endpoints
    items:
      - type: doc
        id: api/users
docs:
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
  - type: category
    label: Recipes
    link:
      type: generated-index
      permalink: /docs/category/recipes
    items:
      - type: doc
        id: recipes/cache
`

func TestIndexFirstDocIDOfFirstSidebar(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		wantID string
		wantOK bool
	}{
		{
			name: "first sidebar in sorted name order",
			src:  multiSidebarFixture,
			// "api" sorts before "docs".
			wantID: "api/index",
			wantOK: true,
		},
		{
			name:   "sidebar with no doc ids",
			src:    "empty: []\nzdocs:\n  - type: doc\n    id: intro\n",
			wantOK: false,
		},
		{
			name:   "no sidebars",
			src:    "{}",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := sidebar.NewIndex(testutil.MustSidebarsFromYAML(t, tt.src))
			id, ok := x.FirstDocIDOfFirstSidebar()
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("FirstDocIDOfFirstSidebar() = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestIndexSidebarNameByDocID(t *testing.T) {
	x := sidebar.NewIndex(testutil.MustSidebarsFromYAML(t, multiSidebarFixture))

	tests := []struct {
		docID    string
		wantName string
		wantOK   bool
	}{
		{"intro", "docs", true},
		{"guides/overview", "docs", true}, // category doc-link counts as ownership
		{"guides/install", "docs", true},
		{"api/users", "api", true},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		name, ok := x.SidebarNameByDocID(tt.docID)
		if name != tt.wantName || ok != tt.wantOK {
			t.Errorf("SidebarNameByDocID(%q) = (%q, %v), want (%q, %v)", tt.docID, name, ok, tt.wantName, tt.wantOK)
		}
	}
}

func TestIndexDuplicateDocIDFirstMatchWins(t *testing.T) {
	x := sidebar.NewIndex(testutil.MustSidebarsFromYAML(t, `
beta:
  - type: doc
    id: shared
alpha:
  - type: doc
    id: shared
`))

	name, ok := x.SidebarNameByDocID("shared")
	if !ok || name != "alpha" {
		t.Errorf("SidebarNameByDocID(shared) = (%q, %v), want first match in sorted order (alpha)", name, ok)
	}
}

func TestIndexCategoryGeneratedIndexList(t *testing.T) {
	x := sidebar.NewIndex(testutil.MustSidebarsFromYAML(t, multiSidebarFixture))

	list := x.CategoryGeneratedIndexList()

	var got []string
	for _, gen := range list {
		got = append(got, gen.SidebarName+":"+gen.Permalink())
	}
	want := []string{
		"api:/api/category/endpoints",
		"docs:/docs/category/recipes",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryGeneratedIndexList = %v, want %v", got, want)
	}

	// Querying again must yield identical results.
	if again := x.CategoryGeneratedIndexList(); !reflect.DeepEqual(again, list) {
		t.Error("CategoryGeneratedIndexList is not idempotent")
	}
}

func TestLoadIndexMemoizesPerSidebarSet(t *testing.T) {
	a := testutil.MustSidebarsFromYAML(t, multiSidebarFixture)
	b := testutil.MustSidebarsFromYAML(t, multiSidebarFixture)

	xa := sidebar.LoadIndex(a)
	xb := sidebar.LoadIndex(b)
	if xa != xb {
		t.Error("structurally equal sidebar sets should share one memoized index")
	}

	other := testutil.MustSidebarsFromYAML(t, "docs:\n  - type: doc\n    id: solo\n")
	if sidebar.LoadIndex(other) == xa {
		t.Error("different sidebar sets must not share an index")
	}
}
