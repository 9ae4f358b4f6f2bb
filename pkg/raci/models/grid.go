// Package models defines data structures for RACI matrix inference.
package models

// Grid is a rectangular block of raw cell text, rows outermost.
// It is the immutable input to the inference engine; loaders produce it
// from spreadsheet or delimited-text sources.
type Grid [][]string

// Normalized returns a copy of the grid with every ragged row padded
// with empty cells to the width of the widest row.
func (g Grid) Normalized() Grid {
	maxCols := 0
	for _, row := range g {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	out := make(Grid, len(g))
	for i, row := range g {
		padded := make([]string, maxCols)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

// IsEmpty reports whether the grid contains no non-empty cell.
func (g Grid) IsEmpty() bool {
	for _, row := range g {
		for _, cell := range row {
			if cell != "" {
				return false
			}
		}
	}
	return true
}
