package output

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raciboard/pkg/raci/models"
)

func testModel() *models.Model {
	now, tgt := 2, 4
	return &models.Model{
		Roles: []models.Role{
			{ID: "pm", Label: "Product Manager", Short: "PM", Color: "#4ae0b0", Status: models.RoleFilled},
			{ID: "dev", Label: "Developer", Short: "DEV", Color: "#e0a040", Status: models.RoleFilled},
		},
		Categories: []models.Category{
			{
				Name:  "Delivery",
				Color: "#8090CC",
				Items: []models.CapabilityItem{
					{
						Name:        "Design API",
						Now:         &now,
						Tgt:         &tgt,
						Assignments: map[string]string{"pm": "A", "dev": "R"},
					},
					{
						Name:        "Write tests",
						Assignments: map[string]string{"dev": "R"},
					},
				},
			},
		},
		Meta: models.Meta{RoleCount: 2, CategoryCount: 1, CapabilityCount: 2},
	}
}

func parseKitCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}), "kit CSV must carry a UTF-8 BOM")
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestBuildKit(t *testing.T) {
	files, err := BuildKit(testModel())
	require.NoError(t, err)

	names := make([]string, len(files))
	byName := make(map[string][]byte)
	for i, f := range files {
		names[i] = f.Name
		byName[f.Name] = f.Content
	}
	assert.Equal(t, []string{
		"Roles.csv", "Capabilities.csv", "RACI_Assignments.csv",
		"PowerQuery_Import.m", "DAX_Measures.dax", "PowerBI_QuickStart.txt",
	}, names)

	roles := parseKitCSV(t, byName["Roles.csv"])
	require.Len(t, roles, 3)
	assert.Equal(t, []string{"RoleID", "RoleLabel", "RoleShort", "RoleColor", "Status"}, roles[0])
	assert.Equal(t, []string{"pm", "Product Manager", "PM", "#4ae0b0", "filled"}, roles[1])

	caps := parseKitCSV(t, byName["Capabilities.csv"])
	require.Len(t, caps, 3)
	// Design API: now 2, target 4, delta 2.
	assert.Equal(t, "Design API", caps[1][3])
	assert.Equal(t, "2", caps[1][5])
	assert.Equal(t, "4", caps[1][6])
	assert.Equal(t, "2", caps[1][7])
	// Write tests has no maturity pair.
	assert.Equal(t, "", caps[2][5])
	assert.Equal(t, "", caps[2][7])

	assigns := parseKitCSV(t, byName["RACI_Assignments.csv"])
	// Header plus three assignment rows.
	require.Len(t, assigns, 4)
	var devRow []string
	for _, row := range assigns[1:] {
		if row[1] == "dev" && row[3] == "Design API" {
			devRow = row
		}
	}
	require.NotNil(t, devRow)
	assert.Equal(t, "R", devRow[5])
	assert.Equal(t, "4", devRow[6])
	assert.Equal(t, "1", devRow[7])
	assert.Equal(t, "0", devRow[8])

	dax := string(byName["DAX_Measures.dax"])
	assert.Contains(t, dax, "PM Total")
	assert.Contains(t, dax, `RACI_Assignments[RoleID] = "dev"`)
}

func TestKitZip(t *testing.T) {
	data, err := KitZip(testModel())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 6)
	assert.Equal(t, "Roles.csv", zr.File[0].Name)
}

func TestWriteKit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kit")
	paths, err := WriteKit(testModel(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 6)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExportHTML(t *testing.T) {
	page, err := ExportHTML(testModel())
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, `<body data-exported="true">`)
	assert.Contains(t, html, "window.__RACI_DATA__ = ")
	assert.Contains(t, html, "<style>")
	assert.NotContains(t, html, `<link rel="stylesheet" href="styles.css">`)
	assert.NotContains(t, html, `<script src="app.js"></script>`)

	// The embedded JSON must not be able to close the script block.
	assert.NotContains(t, html, `"Design API"</`)
}

func TestToJSON(t *testing.T) {
	m := testModel()

	compact, err := ToJSON(m, false)
	require.NoError(t, err)
	pretty, err := ToJSON(m, true)
	require.NoError(t, err)
	assert.Greater(t, len(pretty), len(compact))

	var decoded models.Model
	require.NoError(t, json.Unmarshal(compact, &decoded))
	assert.Equal(t, m.Roles, decoded.Roles)
	assert.Equal(t, m.Categories, decoded.Categories)
}
