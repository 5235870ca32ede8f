// Package catalog holds the fixed set of package categories the AUR accepts
// on submission, keyed by human-readable name.
package catalog

import (
	"errors"
	"sort"
)

// ErrNotFound is returned by Validate for names outside the catalog.
var ErrNotFound = errors.New("category not found")

// NoCategoryID is the identifier the AUR assigns when no category is chosen.
const NoCategoryID = "1"

// Entry maps a category name to its server-side identifier.
type Entry struct {
	Name string
	ID   string
}

// This list must be sorted by name.
var entries = []Entry{
	{"daemons", "2"},
	{"devel", "3"},
	{"editors", "4"},
	{"emulators", "5"},
	{"fonts", "20"},
	{"games", "6"},
	{"gnome", "7"},
	{"i18n", "8"},
	{"kde", "9"},
	{"kernels", "19"},
	{"lib", "10"},
	{"modules", "11"},
	{"multimedia", "12"},
	{"network", "13"},
	{"office", "14"},
	{"science", "15"},
	{"system", "16"},
	{"x11", "17"},
	{"xfce", "18"},
}

// Validate looks up a category name and returns its identifier.
// The match is exact and case-sensitive.
func Validate(name string) (string, error) {
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].Name >= name
	})
	if i < len(entries) && entries[i].Name == name {
		return entries[i].ID, nil
	}
	return "", ErrNotFound
}

// Names returns all valid category names in catalog order.
func Names() []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}
