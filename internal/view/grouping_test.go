package view_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/models"
	"github.com/justsurfingit/applytrack/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func app(company, section string) models.Application {
	a := models.Application{
		ID:          uuid.New(),
		CompanyName: company,
		Status:      models.StatusApplied,
	}
	if section != "" {
		a.Section = &models.Section{ID: uuid.New(), Name: section}
	}
	return a
}

func groupNames(groups []view.Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func TestGroupBySection_UnsectionedAlwaysLast(t *testing.T) {
	apps := []models.Application{
		app("One", "Zebra"),
		app("Two", "Aardvark"),
		app("Three", ""),
	}

	groups := view.GroupBySection(apps)

	// Unsectioned never participates in alphabetical ordering.
	assert.Equal(t, []string{"Aardvark", "Zebra", view.UnsectionedName}, groupNames(groups))
}

func TestGroupBySection_EmptyUnsectionedOmitted(t *testing.T) {
	apps := []models.Application{
		app("One", "Interviews"),
		app("Two", "Offers"),
	}

	groups := view.GroupBySection(apps)

	assert.Equal(t, []string{"Interviews", "Offers"}, groupNames(groups))
	for _, g := range groups {
		assert.NotEqual(t, view.UnsectionedName, g.Name)
	}
}

func TestGroupBySection_StablePartition(t *testing.T) {
	// Input arrives date-applied descending; each bucket must preserve that
	// relative order exactly.
	apps := []models.Application{
		app("Newest", "Pipeline"),
		app("Middle", "Pipeline"),
		app("Oldest", "Pipeline"),
		app("Solo", ""),
	}

	groups := view.GroupBySection(apps)
	require.Len(t, groups, 2)

	pipeline := groups[0]
	assert.Equal(t, "Pipeline", pipeline.Name)
	assert.Equal(t, 3, pipeline.Count)
	assert.Equal(t, "Newest", pipeline.Applications[0].CompanyName)
	assert.Equal(t, "Middle", pipeline.Applications[1].CompanyName)
	assert.Equal(t, "Oldest", pipeline.Applications[2].CompanyName)

	assert.Equal(t, view.UnsectionedName, groups[1].Name)
	assert.Equal(t, 1, groups[1].Count)
}

func TestGroupBySection_CountsMatchMembers(t *testing.T) {
	apps := []models.Application{
		app("A", "X"),
		app("B", "X"),
		app("C", "Y"),
		app("D", ""),
		app("E", ""),
	}

	for _, g := range view.GroupBySection(apps) {
		assert.Equal(t, len(g.Applications), g.Count)
	}
}

func TestGroupBySection_EmptyInput(t *testing.T) {
	assert.Empty(t, view.GroupBySection(nil))
}

func TestGroupBySection_DoesNotMutateInput(t *testing.T) {
	apps := []models.Application{
		app("One", "Zebra"),
		app("Two", ""),
		app("Three", "Aardvark"),
	}
	want := make([]models.Application, len(apps))
	copy(want, apps)

	view.GroupBySection(apps)

	// Toggling back to the flat view renders the same untouched slice.
	assert.Equal(t, want, apps)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, view.ModeBySection, view.ParseMode("by_section"))
	assert.Equal(t, view.ModeAll, view.ParseMode("all"))
	assert.Equal(t, view.ModeAll, view.ParseMode(""))
	assert.Equal(t, view.ModeAll, view.ParseMode("nonsense"))
}
