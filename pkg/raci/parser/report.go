package parser

import "raciboard/pkg/raci/models"

// reportableTags are the classifications surfaced to the caller; the
// rest (empty, delta, priority, id, numeric_skip, unknown) are internal
// bookkeeping and stay out of the report.
var reportableTags = map[models.ColumnTag]bool{
	models.TagRaci:           true,
	models.TagName:           true,
	models.TagCategory:       true,
	models.TagDescription:    true,
	models.TagMaturityNow:    true,
	models.TagMaturityTarget: true,
	models.TagStatus:         true,
}

// BuildMeta computes the validation report for a standard-orientation
// parse: counts, capabilities with no Responsible role, roles that are
// never Responsible, and the filtered column-classification table.
func BuildMeta(roles []models.Role, categories []models.Category, tags map[int]models.ColumnTag, headers []string, hasMaturity bool, scale int) models.Meta {
	capCount := 0
	orphaned := []string{}
	rCounts := make(map[string]int, len(roles))
	for _, cat := range categories {
		capCount += len(cat.Items)
		for _, item := range cat.Items {
			hasR := false
			for roleID, letter := range item.Assignments {
				if letter == "R" {
					hasR = true
					rCounts[roleID]++
				}
			}
			if !hasR {
				orphaned = append(orphaned, cat.Name+" > "+item.Name)
			}
		}
	}

	zeroR := []string{}
	for _, role := range roles {
		if rCounts[role.ID] == 0 {
			zeroR = append(zeroR, role.Label)
		}
	}

	colReport := make(map[int]models.ColumnInfo)
	for ci, tag := range tags {
		if !reportableTags[tag] {
			continue
		}
		header := ""
		if ci < len(headers) {
			header = NormalizeText(headers[ci])
		}
		colReport[ci] = models.ColumnInfo{Header: header, Classification: tag}
	}

	return models.Meta{
		RoleCount:             len(roles),
		CategoryCount:         len(categories),
		CapabilityCount:       capCount,
		OrphanedCapabilities:  orphaned,
		ZeroRRoles:            zeroR,
		HasMaturity:           hasMaturity,
		MaturityScale:         scale,
		ColumnClassifications: colReport,
		Layout:                models.LayoutStandard,
	}
}
