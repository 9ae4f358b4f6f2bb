// Package loader turns spreadsheet and delimited-text files into the
// uniform string grid the inference engine consumes.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"raciboard/pkg/raci/models"
)

// ErrUnsupportedFormat indicates the file extension is not handled.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// SheetNotFoundError indicates a requested sheet name is absent from the
// workbook.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found. Available: %v", e.Sheet, e.Available)
}

// Load reads a file into a grid. Excel workbooks resolve merged cells by
// value replication and auto-select the best sheet when sheetName is
// empty; delimited text auto-detects encoding and delimiter. The second
// return is the sheet label actually used ("CSV" for delimited text).
func Load(path, sheetName string) (models.Grid, string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return loadCSV(data)
	case ".xlsx", ".xlsm":
		return loadXLSXFile(path, sheetName)
	default:
		return nil, "", fmt.Errorf("%w: %s (use .xlsx or .csv)", ErrUnsupportedFormat, ext)
	}
}

// LoadBytes reads in-memory file content; the filename's extension
// selects the format.
func LoadBytes(data []byte, filename, sheetName string) (models.Grid, string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv", ".tsv", ".txt":
		return loadCSV(data)
	case ".xlsx", ".xlsm":
		return loadXLSXBytes(data, sheetName)
	default:
		return nil, "", fmt.Errorf("%w: %s (use .xlsx or .csv)", ErrUnsupportedFormat, ext)
	}
}
