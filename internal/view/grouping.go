// Package view holds the display-side projections over fetched application
// data: section grouping, the flat/by-section view toggle, salary range
// formatting, and the list-surface interaction state machine.
package view

import (
	"sort"

	"github.com/justsurfingit/applytrack/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnsectionedName is the heading for applications with no section. The
// bucket never participates in alphabetical ordering — it always renders
// last, and only when non-empty.
const UnsectionedName = "Unsectioned"

// Group is one display bucket of the by-section view.
type Group struct {
	Name         string               `json:"name"`
	Count        int                  `json:"count"`
	Applications []models.Application `json:"applications"`
}

// GroupBySection partitions an already-ordered application list into named
// groups. The partition is stable: the relative order of applications inside
// each group is exactly the input order (date_applied descending, established
// upstream). Named groups sort alphabetically with a locale-aware comparison;
// the unsectioned bucket, if any, is appended after them.
func GroupBySection(apps []models.Application) []Group {
	buckets := make(map[string][]models.Application)
	var names []string
	var unsectioned []models.Application

	for _, app := range apps {
		name := app.SectionName()
		if name == "" {
			unsectioned = append(unsectioned, app)
			continue
		}
		if _, ok := buckets[name]; !ok {
			names = append(names, name)
		}
		buckets[name] = append(buckets[name], app)
	}

	c := collate.New(language.English)
	sort.Slice(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})

	groups := make([]Group, 0, len(names)+1)
	for _, name := range names {
		groups = append(groups, Group{
			Name:         name,
			Count:        len(buckets[name]),
			Applications: buckets[name],
		})
	}
	if len(unsectioned) > 0 {
		groups = append(groups, Group{
			Name:         UnsectionedName,
			Count:        len(unsectioned),
			Applications: unsectioned,
		})
	}
	return groups
}

// Mode selects between the flat list and the by-section grouping. Switching
// modes is a pure projection over the same in-memory list — it never refetches
// or reorders the underlying data.
type Mode string

const (
	ModeAll       Mode = "all"
	ModeBySection Mode = "by_section"
)

// ParseMode maps a raw query value to a view mode, defaulting to the flat view.
func ParseMode(raw string) Mode {
	if raw == string(ModeBySection) {
		return ModeBySection
	}
	return ModeAll
}
