package raci

import (
	"path/filepath"

	"raciboard/pkg/raci/loader"
	"raciboard/pkg/raci/models"
	"raciboard/pkg/raci/parser"
)

// Parse converts a grid into the canonical model plus diagnostics. It is
// a pure function: no I/O, no shared state, safe to call concurrently on
// independent grids.
func Parse(grid models.Grid, sheetLabel string, opts Options) (*models.Model, error) {
	g := grid.Normalized()
	if len(g) == 0 || g.IsEmpty() {
		return nil, ErrNoData
	}

	headerIdx := parser.FindHeaderRow(g, opts.Scan)
	headers := g[headerIdx]

	skip, subHeaders := parser.SkipSubHeaderRows(g, headerIdx, opts.Scan)
	dataRows := g[headerIdx+1+skip:]

	tags := parser.ClassifyColumns(headers, dataRows, opts.Classifier)

	if parser.DetectTransposed(g, headerIdx, tags, opts.Orient) {
		return parser.ExtractTransposed(g, headerIdx, sheetLabel), nil
	}

	roles := parser.ExtractRoles(headers, subHeaders, tags)
	if len(roles) == 0 {
		return nil, &NoRaciColumnsError{Sheet: sheetLabel}
	}

	matNowCol := parser.FirstColumn(tags, models.TagMaturityNow)
	matTgtCol := parser.FirstColumn(tags, models.TagMaturityTarget)
	scale := parser.DetectScale(dataRows, matNowCol, matTgtCol)

	raw := parser.ExtractRows(dataRows, roles, tags, scale)
	categories := parser.AssembleCategories(raw)

	roleList := make([]models.Role, len(roles))
	for i, rc := range roles {
		roleList[i] = rc.Role
	}

	meta := parser.BuildMeta(roleList, categories, tags, headers, matNowCol >= 0, scale)
	meta.Sheet = sheetLabel

	return &models.Model{Roles: roleList, Categories: categories, Meta: meta}, nil
}

// ParseFile loads a spreadsheet or delimited-text file and parses it.
// sheetName selects an Excel sheet; empty means auto-select the sheet
// that looks most like a responsibility matrix.
func ParseFile(path, sheetName string, opts Options) (*models.Model, error) {
	grid, sheetUsed, err := loader.Load(path, sheetName)
	if err != nil {
		return nil, err
	}
	model, err := Parse(grid, sheetUsed, opts)
	if err != nil {
		return nil, err
	}
	model.Meta.Filename = filepath.Base(path)
	return model, nil
}

// ParseBytes parses in-memory file content, as received by an upload
// endpoint. The filename's extension selects the loader.
func ParseBytes(data []byte, filename, sheetName string, opts Options) (*models.Model, error) {
	grid, sheetUsed, err := loader.LoadBytes(data, filename, sheetName)
	if err != nil {
		return nil, err
	}
	model, err := Parse(grid, sheetUsed, opts)
	if err != nil {
		return nil, err
	}
	model.Meta.Filename = filepath.Base(filename)
	return model, nil
}
