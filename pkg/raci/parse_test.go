package raci

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raciboard/pkg/raci/models"
)

func TestParseSimpleGrid(t *testing.T) {
	grid := models.Grid{
		{"Capability", "PM", "Dev", "QA"},
		{"Design API", "A", "R", "C"},
	}

	m, err := Parse(grid, "Sheet1", DefaultOptions())
	require.NoError(t, err)

	require.Len(t, m.Roles, 3)
	assert.Equal(t, "pm", m.Roles[0].ID)
	assert.Equal(t, "PM", m.Roles[0].Label)
	assert.Equal(t, "PM", m.Roles[0].Short)
	assert.Equal(t, models.RoleFilled, m.Roles[0].Status)

	require.Len(t, m.Categories, 1)
	assert.Equal(t, "General", m.Categories[0].Name)
	require.Len(t, m.Categories[0].Items, 1)

	item := m.Categories[0].Items[0]
	assert.Equal(t, "Design API", item.Name)
	assert.Equal(t, map[string]string{"pm": "A", "dev": "R", "qa": "C"}, item.Assignments)

	assert.Equal(t, models.LayoutStandard, m.Meta.Layout)
	assert.Equal(t, "Sheet1", m.Meta.Sheet)
	assert.Equal(t, 3, m.Meta.RoleCount)
	assert.Equal(t, 1, m.Meta.CapabilityCount)
	assert.Empty(t, m.Meta.OrphanedCapabilities)
	// Only Dev carries an R anywhere.
	assert.Equal(t, []string{"PM", "QA"}, m.Meta.ZeroRRoles)
	assert.False(t, m.Meta.HasMaturity)
}

func TestParseCategoriesAndMaturity(t *testing.T) {
	grid := models.Grid{
		{"Capability", "Category", "PM", "Dev", "QA", "Current %", "Target %"},
		{"Define roadmap", "Strategy", "A", "R", "I", "40", "80"},
		{"Approve budget", "Strategy", "A", "C", "I", "60", "80"},
		{"Design API", "Delivery", "C", "R", "A", "20", "60"},
		{"TOTAL", "", "", "", "", "120", "220"},
	}

	m, err := Parse(grid, "RACI", DefaultOptions())
	require.NoError(t, err)

	require.Len(t, m.Categories, 2)
	assert.Equal(t, "Strategy", m.Categories[0].Name)
	assert.Equal(t, "Delivery", m.Categories[1].Name)
	assert.Len(t, m.Categories[0].Items, 2)
	assert.Len(t, m.Categories[1].Items, 1)
	assert.Equal(t, 3, m.Meta.CapabilityCount)

	assert.True(t, m.Meta.HasMaturity)
	assert.Equal(t, 100, m.Meta.MaturityScale)
	item := m.FindItem("Strategy", "Define roadmap")
	require.NotNil(t, item)
	require.NotNil(t, item.Now)
	require.NotNil(t, item.Tgt)
	assert.Equal(t, 2, *item.Now)
	assert.Equal(t, 4, *item.Tgt)

	// The TOTAL aggregate row is never emitted as a capability.
	for _, cat := range m.Categories {
		for _, it := range cat.Items {
			assert.NotEqual(t, "TOTAL", it.Name)
		}
	}

	assert.Equal(t, []string{"Strategy > Approve budget"}, m.Meta.OrphanedCapabilities)
	assert.Equal(t, []string{"PM", "QA"}, m.Meta.ZeroRRoles)
}

func TestParseInlineCategories(t *testing.T) {
	grid := models.Grid{
		{"Task", "PM", "Dev", "QA"},
		{"1. Strategy", "", "", ""},
		{"Define roadmap", "A", "R", "I"},
		{"2. Delivery", "", "", ""},
		{"Design API", "C", "R", "A"},
		{"RACI Legend", "", "", ""},
		{"R = Responsible", "", "", ""},
	}

	m, err := Parse(grid, "", DefaultOptions())
	require.NoError(t, err)

	require.Len(t, m.Categories, 2)
	assert.Equal(t, "Strategy", m.Categories[0].Name)
	assert.Equal(t, "Delivery", m.Categories[1].Name)
	assert.Len(t, m.Categories[0].Items, 1)
	assert.Len(t, m.Categories[1].Items, 1)
}

func TestParseSubHeaderLabels(t *testing.T) {
	grid := models.Grid{
		{"Capability", "PM", "DEV", "QA"},
		{"", "Project Manager", "Developer", "Quality Analyst"},
		{"Design API", "A", "R", "C"},
	}

	m, err := Parse(grid, "", DefaultOptions())
	require.NoError(t, err)

	require.Len(t, m.Roles, 3)
	assert.Equal(t, "project_manager", m.Roles[0].ID)
	assert.Equal(t, "Project Manager", m.Roles[0].Label)
	assert.Equal(t, "PM", m.Roles[0].Short)
	assert.Equal(t, "Developer", m.Roles[1].Label)
	assert.Equal(t, "DEV", m.Roles[1].Short)
}

func TestParseTransposedGrid(t *testing.T) {
	grid := models.Grid{
		{"Role", "Design API", "Write Tests"},
		{"PM", "A", "I"},
		{"Dev", "R", "R"},
	}

	m, err := Parse(grid, "Sheet1", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, models.LayoutTransposed, m.Meta.Layout)
	require.Len(t, m.Roles, 2)
	assert.Equal(t, "pm", m.Roles[0].ID)
	assert.Equal(t, "dev", m.Roles[1].ID)

	require.Len(t, m.Categories, 1)
	assert.Equal(t, "General", m.Categories[0].Name)
	require.Len(t, m.Categories[0].Items, 2)
	assert.Equal(t, "Design API", m.Categories[0].Items[0].Name)
	assert.Equal(t, "R", m.Categories[0].Items[1].Assignments["dev"])
}

func TestParseUnfilledRole(t *testing.T) {
	grid := models.Grid{
		{"Capability", "PM", "Architect (TBD)", "QA"},
		{"Design API", "A", "R", "C"},
	}

	m, err := Parse(grid, "", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, m.Roles, 3)
	assert.Equal(t, models.RoleUnfilled, m.Roles[1].Status)
	assert.Equal(t, models.RoleFilled, m.Roles[0].Status)
}

func TestParseNoRaciColumns(t *testing.T) {
	grid := models.Grid{
		{"Name", "Value", "Notes", "Extra"},
		{"Alpha", "12", "first entry in the ledger", "zz"},
		{"Beta", "15", "second entry in the ledger", "qq"},
	}

	_, err := Parse(grid, "Data", DefaultOptions())
	var noRaci *NoRaciColumnsError
	require.ErrorAs(t, err, &noRaci)
	assert.Equal(t, "Data", noRaci.Sheet)
	assert.Contains(t, err.Error(), "no RACI columns detected")
}

func TestParseEmptyGrid(t *testing.T) {
	_, err := Parse(models.Grid{}, "", DefaultOptions())
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Parse(models.Grid{{"", ""}, {"", ""}}, "", DefaultOptions())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestParseBytesCSV(t *testing.T) {
	data := []byte("Capability,PM,Dev,QA\nDesign API,A,R,C\n")

	m, err := ParseBytes(data, "matrix.csv", "", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "matrix.csv", m.Meta.Filename)
	assert.Equal(t, "CSV", m.Meta.Sheet)
	require.Len(t, m.Roles, 3)
}

func TestParseBytesUnsupportedFormat(t *testing.T) {
	_, err := ParseBytes([]byte("x"), "matrix.pdf", "", DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
