package parser

import (
	"strings"

	"raciboard/pkg/raci/models"
)

// DefaultCategory is the grouping used when a sheet has neither an
// explicit category column nor inline category headers.
const DefaultCategory = "General"

// RoleColumn pairs a detected role with the column it was read from.
// The column index is extraction bookkeeping and never leaves the parser.
type RoleColumn struct {
	Role models.Role
	Col  int
}

// RawCategory is an extraction-order category before summary filtering
// and color assignment.
type RawCategory struct {
	Name  string
	Items []models.CapabilityItem
}

// ExtractRoles builds one role per raci column. Display labels prefer
// the spelled-out names found in sub-header rows; a short, all-caps
// header is kept verbatim as the abbreviation.
func ExtractRoles(headers []string, subHeaders [][]string, tags map[int]models.ColumnTag) []RoleColumn {
	raciCols := RaciColumns(tags)

	subLabels := make(map[int]string)
	for _, row := range subHeaders {
		for _, ci := range raciCols {
			if ci < len(row) {
				if v := NormalizeText(row[ci]); len(v) > 1 {
					subLabels[ci] = v
				}
			}
		}
	}

	roles := make([]RoleColumn, 0, len(raciCols))
	for i, ci := range raciCols {
		label := ""
		if ci < len(headers) {
			label = NormalizeText(headers[ci])
		}
		fullLabel := label
		if sub, ok := subLabels[ci]; ok {
			fullLabel = sub
		}
		short := ShortCode(label)
		if len(label) <= 6 && label == strings.ToUpper(label) && label != "" {
			short = label
		}
		status := models.RoleFilled
		if IsUnfilled(label) || IsUnfilled(fullLabel) {
			status = models.RoleUnfilled
		}
		roles = append(roles, RoleColumn{
			Role: models.Role{
				ID:     MakeID(fullLabel),
				Label:  fullLabel,
				Short:  short,
				Color:  rolePalette[i%len(rolePalette)],
				Status: status,
			},
			Col: ci,
		})
	}
	return roles
}

// DetectScale samples the maturity columns across all data rows and
// infers the source scale. Returns 5 when no maturity column exists.
func DetectScale(dataRows [][]string, matNowCol, matTgtCol int) int {
	var samples []string
	for _, ci := range []int{matNowCol, matTgtCol} {
		if ci < 0 {
			continue
		}
		for _, row := range dataRows {
			if ci < len(row) {
				if v := NormalizeText(row[ci]); v != "" {
					samples = append(samples, v)
				}
			}
		}
	}
	if len(samples) == 0 {
		return 5
	}
	scale, _ := DetectMaturityScale(samples)
	return scale
}

// ExtractRows walks the data rows in order, resolving inline category
// headers, dropping summary rows, and assembling capability items with
// their per-role assignments and maturity pair. Categories come back in
// first-seen order, unfiltered.
func ExtractRows(dataRows [][]string, roles []RoleColumn, tags map[int]models.ColumnTag, scale int) []RawCategory {
	nameCol := FirstColumn(tags, models.TagName)
	catCol := FirstColumn(tags, models.TagCategory)
	descCol := FirstColumn(tags, models.TagDescription)
	matNowCol := FirstColumn(tags, models.TagMaturityNow)
	matTgtCol := FirstColumn(tags, models.TagMaturityTarget)

	var cats []RawCategory
	catIndex := make(map[string]int)
	add := func(category string, item models.CapabilityItem) {
		idx, ok := catIndex[category]
		if !ok {
			idx = len(cats)
			cats = append(cats, RawCategory{Name: category})
			catIndex[category] = idx
		}
		cats[idx].Items = append(cats[idx].Items, item)
	}

	current := DefaultCategory
	for _, row := range dataRows {
		if len(nonEmptyCells(row)) == 0 {
			continue
		}

		nameVal := ""
		if nameCol >= 0 && nameCol < len(row) {
			nameVal = NormalizeText(row[nameCol])
		}

		// Inline category header: a named row whose raci cells are all
		// empty, on sheets without an explicit category column. Checked
		// before the summary skip so footer headings like "CATEGORY
		// AVERAGES" open their own category and get filtered later by
		// the assembler's has-raci test.
		if nameVal != "" && catCol < 0 && allRaciEmpty(row, roles) {
			current = StripNumbering(nameVal)
			continue
		}
		if nameVal != "" && IsSummaryRow(nameVal) {
			continue
		}
		if nameVal == "" {
			continue
		}

		if catCol >= 0 && catCol < len(row) {
			if catVal := NormalizeText(row[catCol]); catVal != "" {
				current = StripNumbering(catVal)
			}
		}

		item := models.CapabilityItem{Name: nameVal}
		if descCol >= 0 && descCol < len(row) {
			item.Desc = NormalizeText(row[descCol])
		}
		for _, rc := range roles {
			if rc.Col >= len(row) {
				continue
			}
			if letter := NormalizeRaci(row[rc.Col]); letter != "" {
				if item.Assignments == nil {
					item.Assignments = make(map[string]string)
				}
				item.Assignments[rc.Role.ID] = letter
			}
		}
		if matNowCol >= 0 && matNowCol < len(row) {
			item.Now = NormalizeMaturity(row[matNowCol], scale)
		}
		if matTgtCol >= 0 && matTgtCol < len(row) {
			item.Tgt = NormalizeMaturity(row[matTgtCol], scale)
		}

		add(current, item)
	}
	return cats
}

// AssembleCategories keeps only real data categories: non-empty, not
// named like a footer/legend section, and carrying at least one RACI
// assignment somewhere (numeric-only footer tables fail that test).
// Colors cycle through the category palette by surviving index.
func AssembleCategories(raw []RawCategory) []models.Category {
	var out []models.Category
	for _, rc := range raw {
		if len(rc.Items) == 0 || IsSummaryCategory(rc.Name) {
			continue
		}
		hasRaci := false
		for _, item := range rc.Items {
			if len(item.Assignments) > 0 {
				hasRaci = true
				break
			}
		}
		if !hasRaci {
			continue
		}
		out = append(out, models.Category{
			Name:  rc.Name,
			Color: categoryPalette[len(out)%len(categoryPalette)],
			Items: rc.Items,
		})
	}
	return out
}

func allRaciEmpty(row []string, roles []RoleColumn) bool {
	for _, rc := range roles {
		if rc.Col < len(row) && NormalizeText(row[rc.Col]) != "" {
			return false
		}
	}
	return true
}
