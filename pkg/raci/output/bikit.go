package output

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"raciboard/pkg/raci/models"
)

// raciWeights rank assignments for workload measures; matches the
// engine's responsibility priority.
var raciWeights = map[string]int{"R": 4, "A": 3, "C": 2, "I": 1}

// KitFile is one generated file of the BI starter kit.
type KitFile struct {
	Name    string
	Content []byte
}

// BuildKit renders the BI starter kit in memory: a role dimension table,
// a capability dimension with maturity facts, a one-row-per-assignment
// fact table, plus Power Query and DAX scripts and a quick-start guide.
func BuildKit(m *models.Model) ([]KitFile, error) {
	rolesCSV, err := rolesTable(m)
	if err != nil {
		return nil, err
	}
	capsCSV, err := capabilitiesTable(m)
	if err != nil {
		return nil, err
	}
	assignCSV, err := assignmentsTable(m)
	if err != nil {
		return nil, err
	}
	return []KitFile{
		{Name: "Roles.csv", Content: rolesCSV},
		{Name: "Capabilities.csv", Content: capsCSV},
		{Name: "RACI_Assignments.csv", Content: assignCSV},
		{Name: "PowerQuery_Import.m", Content: []byte(powerQueryScript)},
		{Name: "DAX_Measures.dax", Content: []byte(daxMeasures(m.Roles))},
		{Name: "PowerBI_QuickStart.txt", Content: []byte(quickStart)},
	}, nil
}

// WriteKit writes the kit into a directory and returns the file paths.
func WriteKit(m *models.Model, dir string) ([]string, error) {
	files, err := BuildKit(m)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create kit directory: %w", err)
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// KitZip packs the kit into an in-memory zip archive, for download
// endpoints.
func KitZip(m *models.Model) ([]byte, error) {
	files, err := BuildKit(m)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(f.Content); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rolesTable(m *models.Model) ([]byte, error) {
	return writeCSV(func(w *csv.Writer) error {
		if err := w.Write([]string{"RoleID", "RoleLabel", "RoleShort", "RoleColor", "Status"}); err != nil {
			return err
		}
		for _, r := range m.Roles {
			if err := w.Write([]string{r.ID, r.Label, r.Short, r.Color, string(r.Status)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func capabilitiesTable(m *models.Model) ([]byte, error) {
	return writeCSV(func(w *csv.Writer) error {
		header := []string{
			"CapabilityID", "Category", "CategoryColor", "Capability",
			"Description", "MaturityNow", "MaturityTarget", "MaturityDelta",
		}
		if err := w.Write(header); err != nil {
			return err
		}
		capID := 0
		for _, cat := range m.Categories {
			for _, item := range cat.Items {
				capID++
				now, tgt, delta := "", "", ""
				if item.Now != nil {
					now = strconv.Itoa(*item.Now)
				}
				if item.Tgt != nil {
					tgt = strconv.Itoa(*item.Tgt)
				}
				if item.Now != nil && item.Tgt != nil {
					delta = strconv.Itoa(*item.Tgt - *item.Now)
				}
				row := []string{
					strconv.Itoa(capID), cat.Name, cat.Color, item.Name,
					item.Desc, now, tgt, delta,
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func assignmentsTable(m *models.Model) ([]byte, error) {
	return writeCSV(func(w *csv.Writer) error {
		header := []string{
			"CapabilityID", "RoleID", "Category", "Capability",
			"RoleLabel", "RACI", "Weight", "IsResponsible", "IsAccountable",
		}
		if err := w.Write(header); err != nil {
			return err
		}
		capID := 0
		for _, cat := range m.Categories {
			for _, item := range cat.Items {
				capID++
				for _, role := range m.Roles {
					val, ok := item.Assignments[role.ID]
					if !ok {
						continue
					}
					row := []string{
						strconv.Itoa(capID), role.ID, cat.Name, item.Name,
						role.Label, val, strconv.Itoa(raciWeights[val]),
						boolFlag(val == "R"), boolFlag(val == "A"),
					}
					if err := w.Write(row); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// writeCSV renders rows with a UTF-8 BOM so Excel opens the files with
// the right encoding.
func writeCSV(fill func(*csv.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	w := csv.NewWriter(&buf)
	if err := fill(w); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func daxMeasures(roles []models.Role) string {
	var b strings.Builder
	b.WriteString(daxMeasuresHeader)
	b.WriteString("\n\n// PER-ROLE MEASURES\n")
	for _, role := range roles {
		fmt.Fprintf(&b, "\n// %s (%s)\n", role.Label, role.Short)
		fmt.Fprintf(&b, "%s Total = CALCULATE(COUNTROWS(RACI_Assignments), RACI_Assignments[RoleID] = \"%s\")\n", role.Short, role.ID)
		fmt.Fprintf(&b, "%s R Count = CALCULATE(COUNTROWS(RACI_Assignments), RACI_Assignments[RoleID] = \"%s\", RACI_Assignments[RACI] = \"R\")\n", role.Short, role.ID)
		fmt.Fprintf(&b, "%s Weighted = CALCULATE(SUM(RACI_Assignments[Weight]), RACI_Assignments[RoleID] = \"%s\")\n", role.Short, role.ID)
	}
	return b.String()
}
