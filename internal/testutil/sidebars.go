// Package testutil provides shared sidebar fixtures for tests.
package testutil

import (
	"testing"

	"github.com/docfold/docnav/sidebar"
)

// MustItemsFromYAML decodes a sidebar item sequence, failing the test on
// error. Keeps tree-shaped fixtures readable in table tests.
func MustItemsFromYAML(t *testing.T, src string) []sidebar.Item {
	t.Helper()
	items, err := sidebar.ItemsFromYAML([]byte(src))
	if err != nil {
		t.Fatalf("invalid sidebar fixture: %v", err)
	}
	return items
}

// MustSidebarsFromYAML decodes a full sidebar mapping, failing the test on
// error.
func MustSidebarsFromYAML(t *testing.T, src string) sidebar.Sidebars {
	t.Helper()
	s, err := sidebar.SidebarsFromYAML([]byte(src))
	if err != nil {
		t.Fatalf("invalid sidebars fixture: %v", err)
	}
	return s
}

// StrPtr returns a pointer to s, for optional front-matter fields.
func StrPtr(s string) *string { return &s }

// IDSet builds an unlisted-ids set from a list of doc ids.
func IDSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
