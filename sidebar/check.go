package sidebar

import (
	"fmt"
	"sort"
	"strings"
)

// legacyVersionedPrefix is the deprecated naming convention for versioned
// sidebar names and doc ids, e.g. "version-1.0.0/getting-started".
func legacyVersionedPrefix(versionName string) string {
	return "version-" + versionName + "/"
}

// CheckLegacyVersionedSidebarNames fails when any sidebar name still carries
// the legacy "version-<versionName>/" prefix. sidebarFilePath is only used
// in the error message.
func CheckLegacyVersionedSidebarNames(sidebars Sidebars, versionName, sidebarFilePath string) error {
	prefix := legacyVersionedPrefix(versionName)
	var legacy []string
	for _, name := range sidebars.Names() {
		if strings.HasPrefix(name, prefix) {
			legacy = append(legacy, name)
		}
	}
	if len(legacy) == 0 {
		return nil
	}
	return fmt.Errorf(
		"invalid sidebar file at %q: legacy versioned sidebar names are not supported anymore: [%s]; remove the %q prefix from these sidebar names",
		sidebarFilePath, strings.Join(legacy, ", "), prefix)
}

// CheckDocIDsOptions parameterize CheckSidebarsDocIDs.
type CheckDocIDsOptions struct {
	Sidebars Sidebars

	// AllDocIDs is the caller-supplied set of ids that actually exist.
	AllDocIDs []string

	// VersionName selects the legacy prefix checked before the generic
	// unknown-id report.
	VersionName string

	// SidebarFilePath appears in error messages only.
	SidebarFilePath string
}

// CheckSidebarsDocIDs cross-validates every doc id referenced by the sidebars
// against the known-good set. Ids carrying the legacy versioned prefix are
// reported with a legacy-specific message, taking priority over the generic
// unknown-id report; otherwise all invalid ids are batched into one error
// along with the valid-id set for diagnosis.
func CheckSidebarsDocIDs(opts CheckDocIDsOptions) error {
	valid := make(map[string]struct{}, len(opts.AllDocIDs))
	for _, id := range opts.AllDocIDs {
		valid[id] = struct{}{}
	}

	var invalid []string
	seen := make(map[string]struct{})
	for _, name := range opts.Sidebars.Names() {
		for _, id := range CollectDocIDs(opts.Sidebars[name]) {
			if _, ok := valid[id]; ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			invalid = append(invalid, id)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	prefix := legacyVersionedPrefix(opts.VersionName)
	var legacy []string
	for _, id := range invalid {
		if strings.HasPrefix(id, prefix) {
			legacy = append(legacy, id)
		}
	}
	if len(legacy) > 0 {
		return fmt.Errorf(
			"invalid sidebar file at %q: legacy versioned doc ids are not supported anymore: [%s]; remove the %q prefix from these doc ids",
			opts.SidebarFilePath, strings.Join(legacy, ", "), prefix)
	}

	available := append([]string(nil), opts.AllDocIDs...)
	sort.Strings(available)
	return fmt.Errorf(
		"invalid sidebar file at %q: these sidebar document ids do not exist: [%s]; available document ids are: [%s]",
		opts.SidebarFilePath, strings.Join(invalid, ", "), strings.Join(available, ", "))
}
