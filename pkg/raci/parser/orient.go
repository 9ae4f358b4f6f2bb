package parser

import (
	"strings"

	"raciboard/pkg/raci/models"
)

// OrientParams holds the transposed-layout detection thresholds.
type OrientParams struct {
	// RaciCellMin is the minimum RACI-normalizable fraction of non-empty
	// data cells (first column excluded) for a transposed candidate.
	RaciCellMin float64 `yaml:"raci_cell_min"`
	// MaxDataRows and WidthFactor encode the "wide and short" shape test:
	// fewer than MaxDataRows data rows, and more columns than
	// WidthFactor × data rows.
	MaxDataRows int `yaml:"max_data_rows"`
	WidthFactor int `yaml:"width_factor"`
	// SampleRows bounds how many data rows feed the cell ratio.
	SampleRows int `yaml:"sample_rows"`
}

// DefaultOrientParams returns the standard orientation thresholds.
func DefaultOrientParams() OrientParams {
	return OrientParams{
		RaciCellMin: 0.3,
		MaxDataRows: 20,
		WidthFactor: 2,
		SampleRows:  20,
	}
}

// roleHeaderKeywords mark a first-column header that names the rows as
// roles, the strongest transposed signal.
var roleHeaderKeywords = []string{"role", "person", "who", "member", "stakeholder"}

// DetectTransposed reports whether the grid holds roles as rows and
// capabilities as columns. Two signals flip the orientation, both
// requiring that the data cells past column 0 are mostly RACI letters
// and that the role axis is short: an explicit role-labeled first
// column, or a wide-and-short grid whose columns escaped raci
// classification.
func DetectTransposed(grid models.Grid, headerIdx int, tags map[int]models.ColumnTag, p OrientParams) bool {
	if headerIdx >= len(grid) {
		return false
	}
	headers := grid[headerIdx]
	dataRows := grid[headerIdx+1:]
	if len(dataRows) < 2 {
		return false
	}

	totalCells, raciCells := 0, 0
	sample := dataRows
	if len(sample) > p.SampleRows {
		sample = sample[:p.SampleRows]
	}
	for _, row := range sample {
		end := len(row)
		if len(headers) < end {
			end = len(headers)
		}
		for ci := 1; ci < end; ci++ {
			v := NormalizeText(row[ci])
			if v == "" {
				continue
			}
			totalCells++
			if IsRaci(v) {
				raciCells++
			}
		}
	}
	if totalCells == 0 || float64(raciCells)/float64(totalCells) <= p.RaciCellMin {
		return false
	}
	if len(dataRows) >= p.MaxDataRows {
		return false
	}

	// Role-labeled first column: the header says the rows are roles and
	// the first-column values are labels rather than RACI letters.
	firstHeader := strings.ToLower(NormalizeText(headers[0]))
	if containsAny(firstHeader, roleHeaderKeywords) && !columnLooksRaci(dataRows, 0) {
		return true
	}

	// Shape fallback: almost no raci columns were classified, yet the
	// grid is wide relative to tall.
	if len(RaciColumns(tags)) >= 2 {
		return false
	}
	return len(headers) > len(dataRows)*p.WidthFactor
}

// columnLooksRaci reports whether a column's non-empty values are
// mostly RACI-normalizable.
func columnLooksRaci(rows [][]string, col int) bool {
	total, raci := 0, 0
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		v := NormalizeText(row[col])
		if v == "" {
			continue
		}
		total++
		if IsRaci(v) {
			raci++
		}
	}
	return total > 0 && float64(raci)/float64(total) > 0.5
}

// ExtractTransposed parses a transposed matrix: column 0 of each data
// row is a role label, the header row's remaining cells are capability
// names, and each intersection is a direct RACI value. The result has a
// single "General" category; description, maturity and explicit category
// grouping are undefined in a pure transposed matrix.
func ExtractTransposed(grid models.Grid, headerIdx int, sheetLabel string) *models.Model {
	headers := grid[headerIdx]
	dataRows := grid[headerIdx+1:]

	var roles []models.Role
	var capOrder []string
	assignments := make(map[string]map[string]string) // capability -> role id -> letter

	for _, row := range dataRows {
		if len(row) == 0 {
			continue
		}
		roleName := NormalizeText(row[0])
		if roleName == "" || IsSummaryRow(roleName) {
			continue
		}

		roleID := MakeID(roleName)
		status := models.RoleFilled
		if IsUnfilled(roleName) {
			status = models.RoleUnfilled
		}
		roles = append(roles, models.Role{
			ID:     roleID,
			Label:  roleName,
			Short:  ShortCode(roleName),
			Color:  rolePalette[(len(roles))%len(rolePalette)],
			Status: status,
		})

		for ci := 1; ci < len(row); ci++ {
			if ci >= len(headers) {
				break
			}
			capName := NormalizeText(headers[ci])
			if capName == "" {
				continue
			}
			letter := NormalizeRaci(row[ci])
			if letter == "" {
				continue
			}
			if _, seen := assignments[capName]; !seen {
				assignments[capName] = make(map[string]string)
				capOrder = append(capOrder, capName)
			}
			assignments[capName][roleID] = letter
		}
	}

	var items []models.CapabilityItem
	for _, capName := range capOrder {
		items = append(items, models.CapabilityItem{
			Name:        capName,
			Assignments: assignments[capName],
		})
	}

	var categories []models.Category
	if len(items) > 0 {
		categories = append(categories, models.Category{
			Name:  "General",
			Color: categoryPalette[0],
			Items: items,
		})
	}

	orphaned := []string{}
	for _, item := range items {
		hasR := false
		for _, letter := range item.Assignments {
			if letter == "R" {
				hasR = true
				break
			}
		}
		if !hasR {
			orphaned = append(orphaned, "General > "+item.Name)
		}
	}

	return &models.Model{
		Roles:      roles,
		Categories: categories,
		Meta: models.Meta{
			Sheet:                 sheetLabel,
			RoleCount:             len(roles),
			CategoryCount:         len(categories),
			CapabilityCount:       len(items),
			OrphanedCapabilities:  orphaned,
			ZeroRRoles:            []string{},
			ColumnClassifications: map[int]models.ColumnInfo{},
			Layout:                models.LayoutTransposed,
		},
	}
}
