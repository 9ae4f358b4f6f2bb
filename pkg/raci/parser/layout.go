package parser

import "raciboard/pkg/raci/models"

// ScanParams holds the header-detection heuristics. The defaults are
// tuned against a corpus of real-world matrices; override them through
// the tuning file when a sheet family needs different values.
type ScanParams struct {
	// MaxScan bounds how many leading rows are inspected for a header.
	MaxScan int `yaml:"max_scan"`
	// MinHeaderCells / MinHeaderDistinct gate the primary header test.
	MinHeaderCells    int `yaml:"min_header_cells"`
	MinHeaderDistinct int `yaml:"min_header_distinct"`
	// NumericRejectRatio rejects rows whose non-empty values are mostly
	// numeric-looking (data rows masquerading as headers).
	NumericRejectRatio float64 `yaml:"numeric_reject_ratio"`
	// MaxSubHeaderRows bounds how many rows under the header may be
	// treated as sub-headers.
	MaxSubHeaderRows int `yaml:"max_sub_header_rows"`
	// MinSubHeaderCells is the fill threshold below which a row is a
	// category header rather than a sub-header.
	MinSubHeaderCells int `yaml:"min_sub_header_cells"`
}

// DefaultScanParams returns the standard header-detection thresholds.
func DefaultScanParams() ScanParams {
	return ScanParams{
		MaxScan:            25,
		MinHeaderCells:     4,
		MinHeaderDistinct:  3,
		NumericRejectRatio: 0.6,
		MaxSubHeaderRows:   4,
		MinSubHeaderCells:  3,
	}
}

// FindHeaderRow locates the header row: the first row with enough
// distinct non-empty cells that is not mostly numeric. Merged banner
// rows fail the distinctness test (every cell carries the same value)
// and sparse title rows fail the fill test, so both are skipped.
// Falls back to a looser fill/distinct test, then to the first
// non-empty row, then to row 0.
func FindHeaderRow(grid models.Grid, p ScanParams) int {
	limit := len(grid)
	if p.MaxScan < limit {
		limit = p.MaxScan
	}

	for i := 0; i < limit; i++ {
		nonEmpty := nonEmptyCells(grid[i])
		if len(nonEmpty) < p.MinHeaderCells || distinctCount(nonEmpty) < p.MinHeaderDistinct {
			continue
		}
		numeric := 0
		for _, v := range nonEmpty {
			if numericLooking.MatchString(v) {
				numeric++
			}
		}
		if float64(numeric)/float64(len(nonEmpty)) < p.NumericRejectRatio {
			return i
		}
	}
	for i := 0; i < limit; i++ {
		nonEmpty := nonEmptyCells(grid[i])
		if len(nonEmpty) >= p.MinHeaderCells-1 && distinctCount(nonEmpty) >= p.MinHeaderDistinct-1 {
			return i
		}
	}
	for i := 0; i < limit; i++ {
		if len(nonEmptyCells(grid[i])) > 0 {
			return i
		}
	}
	return 0
}

// SkipSubHeaderRows inspects the rows directly below the header. A row
// with enough filled cells but no RACI value and no maturity number is
// a sub-header (typically spelled-out role names beneath abbreviations)
// and is skipped; its cells are returned so role labels can be lifted
// from them. Scanning stops at the first row that looks like data or is
// too sparse to be a sub-header.
func SkipSubHeaderRows(grid models.Grid, headerIdx int, p ScanParams) (count int, subHeaders [][]string) {
	end := headerIdx + 1 + p.MaxSubHeaderRows
	if end > len(grid) {
		end = len(grid)
	}
	for i := headerIdx + 1; i < end; i++ {
		row := grid[i]
		if len(nonEmptyCells(row)) < p.MinSubHeaderCells {
			break
		}
		looksLikeData := false
		for _, cell := range row {
			if IsRaci(cell) || IsMaturityNumber(cell, 5) {
				looksLikeData = true
				break
			}
		}
		if looksLikeData {
			break
		}
		subHeaders = append(subHeaders, row)
		count++
	}
	return count, subHeaders
}

func nonEmptyCells(row []string) []string {
	var out []string
	for _, cell := range row {
		if v := NormalizeText(cell); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func distinctCount(values []string) int {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}
