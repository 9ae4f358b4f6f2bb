package loader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"raciboard/pkg/raci/models"
)

// Sheet-name scoring for best-sheet auto-selection. Positive hints mark
// likely matrix sheets, negative ones mark charts, lookups and cover
// pages.
var (
	sheetNameBoosts = map[string]int{
		"raci":     50,
		"maturity": 20,
	}
	sheetNameHints     = []string{"responsibility", "assignment", "matrix"}
	sheetNamePenalties = []string{
		"chart", "graph", "pivot", "lookup", "config",
		"template", "instruction", "readme", "cover",
	}
)

// sheetScanRows bounds how many rows feed the RACI-density score.
const sheetScanRows = 31

func loadXLSXFile(path, sheetName string) (models.Grid, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f, sheetName)
}

func loadXLSXBytes(data []byte, sheetName string) (models.Grid, string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f, sheetName)
}

func readWorkbook(f *excelize.File, sheetName string) (models.Grid, string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("workbook has no sheets")
	}

	used := sheetName
	if used == "" {
		used = pickBestSheet(f, sheets)
	} else if !containsSheet(sheets, used) {
		return nil, "", &SheetNotFoundError{Sheet: used, Available: sheets}
	}

	rows, err := f.GetRows(used)
	if err != nil {
		return nil, "", fmt.Errorf("read sheet %q: %w", used, err)
	}

	grid := models.Grid(rows).Normalized()
	fillMergedCells(f, used, grid)
	return grid, used, nil
}

// pickBestSheet scores every sheet by name hints plus the density of
// standard RACI letters in its leading rows and returns the winner. A
// single-sheet workbook short-circuits.
func pickBestSheet(f *excelize.File, sheets []string) string {
	if len(sheets) == 1 {
		return sheets[0]
	}

	best := sheets[0]
	bestScore := -1 << 30
	for _, name := range sheets {
		score := scoreSheetName(name)

		rows, err := f.GetRows(name)
		if err == nil {
			raciCount, cellCount := 0, 0
			for ri, row := range rows {
				if ri >= sheetScanRows {
					break
				}
				for _, cell := range row {
					v := strings.ToUpper(strings.TrimSpace(cell))
					if v == "" {
						continue
					}
					cellCount++
					switch v {
					case "R", "A", "C", "I":
						raciCount++
					}
				}
			}
			if cellCount > 0 {
				score += int(float64(raciCount) / float64(cellCount) * 100)
			}
		}

		if score > bestScore {
			bestScore = score
			best = name
		}
	}
	return best
}

func scoreSheetName(name string) int {
	lower := strings.ToLower(name)
	score := 0
	for kw, boost := range sheetNameBoosts {
		if strings.Contains(lower, kw) {
			score += boost
		}
	}
	for _, kw := range sheetNameHints {
		if strings.Contains(lower, kw) {
			score += 30
			break
		}
	}
	for _, kw := range sheetNamePenalties {
		if strings.Contains(lower, kw) {
			score -= 50
			break
		}
	}
	return score
}

// fillMergedCells replicates each merged range's top-left value into
// every cell the range covers, so the engine sees a plain rectangle.
// Merge metadata failures are ignored; the grid is still usable.
func fillMergedCells(f *excelize.File, sheet string, grid models.Grid) {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return
	}
	for _, m := range merges {
		startCol, startRow, err1 := excelize.CellNameToCoordinates(m.GetStartAxis())
		endCol, endRow, err2 := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err1 != nil || err2 != nil {
			continue
		}
		// Coordinates are 1-based.
		sr, sc := startRow-1, startCol-1
		if sr < 0 || sr >= len(grid) || sc < 0 || sc >= len(grid[sr]) {
			continue
		}
		val := grid[sr][sc]
		for r := sr; r < endRow && r < len(grid); r++ {
			for c := sc; c < endCol && c < len(grid[r]); c++ {
				grid[r][c] = val
			}
		}
	}
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
