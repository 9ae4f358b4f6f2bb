package parser

import (
	"testing"

	"raciboard/pkg/raci/models"
)

func TestFindHeaderRow(t *testing.T) {
	tests := []struct {
		name     string
		grid     models.Grid
		expected int
	}{
		{
			"header on first row",
			models.Grid{
				{"Capability", "PM", "Dev", "QA"},
				{"Design API", "A", "R", "C"},
			},
			0,
		},
		{
			"sparse title row skipped",
			models.Grid{
				{"RACI Matrix 2026", "", "", ""},
				{"Capability", "PM", "Dev", "QA"},
				{"Design API", "A", "R", "C"},
			},
			1,
		},
		{
			"merged banner fails distinctness",
			models.Grid{
				{"Acme Corp", "Acme Corp", "Acme Corp", "Acme Corp"},
				{"Task", "PM", "Dev", "QA"},
			},
			1,
		},
		{
			"numeric row rejected",
			models.Grid{
				{"1", "2", "3", "4"},
				{"Task", "PM", "Dev", "QA"},
			},
			1,
		},
		{
			"narrow grid uses looser fallback",
			models.Grid{
				{"Role", "Design API", "Write Tests"},
				{"PM", "A", "I"},
				{"Dev", "R", "R"},
			},
			0,
		},
		{
			"first non-empty row as last resort",
			models.Grid{
				{"", ""},
				{"x", ""},
			},
			1,
		},
	}

	p := DefaultScanParams()
	for _, tt := range tests {
		if got := FindHeaderRow(tt.grid, p); got != tt.expected {
			t.Errorf("%s: FindHeaderRow = %d, expected %d", tt.name, got, tt.expected)
		}
	}
}

func TestSkipSubHeaderRows(t *testing.T) {
	grid := models.Grid{
		{"Capability", "PM", "Dev", "QA"},
		{"", "Project Manager", "Developer", "Quality Analyst"},
		{"Design API", "A", "R", "C"},
	}
	count, subHeaders := SkipSubHeaderRows(grid, 0, DefaultScanParams())
	if count != 1 {
		t.Fatalf("expected 1 sub-header row, got %d", count)
	}
	if len(subHeaders) != 1 || subHeaders[0][1] != "Project Manager" {
		t.Errorf("unexpected sub-header rows: %v", subHeaders)
	}
}

func TestSkipSubHeaderRowsStopsAtData(t *testing.T) {
	grid := models.Grid{
		{"Capability", "PM", "Dev", "QA"},
		{"Design API", "A", "R", "C"},
	}
	count, _ := SkipSubHeaderRows(grid, 0, DefaultScanParams())
	if count != 0 {
		t.Errorf("expected no sub-header rows, got %d", count)
	}
}

func TestSkipSubHeaderRowsStopsAtSparseRow(t *testing.T) {
	// A category banner under the header is too sparse to be a
	// sub-header; it belongs to the data section.
	grid := models.Grid{
		{"Capability", "PM", "Dev", "QA"},
		{"Strategy", "", "", ""},
		{"Define roadmap", "R", "A", "C"},
	}
	count, _ := SkipSubHeaderRows(grid, 0, DefaultScanParams())
	if count != 0 {
		t.Errorf("expected no sub-header rows, got %d", count)
	}
}
