package raci

import (
	"errors"
	"fmt"

	"raciboard/pkg/raci/loader"
)

// ErrUnsupportedFormat indicates the input file extension is not handled.
// Raised by the loader; re-exported here so callers only import one
// package for error matching.
var ErrUnsupportedFormat = loader.ErrUnsupportedFormat

// ErrNoData indicates the grid is empty after loading.
var ErrNoData = errors.New("file is empty or unreadable")

// NoRaciColumnsError indicates column classification found no
// responsibility columns in standard orientation. This is the most
// common recoverable failure, so the message spells out the supported
// layouts and dialects.
type NoRaciColumnsError struct {
	Sheet string
}

func (e *NoRaciColumnsError) Error() string {
	msg := "no RACI columns detected. Ensure your spreadsheet has columns " +
		"where values are R, A, C, or I (or extended variants like RASCI).\n" +
		"Supported layouts:\n" +
		"  Capability | Role1 | Role2 | ... (with R/A/C/I values)\n" +
		"  Task | PM | Dev | QA | Design\n" +
		"Also supports: full words (Responsible, Accountable, ...),\n" +
		"  multi-value cells (R/A), and RASCI/DACI/RAPID variants"
	if e.Sheet != "" {
		return fmt.Sprintf("sheet %q: %s", e.Sheet, msg)
	}
	return msg
}

// SheetNotFoundError indicates a requested sheet name is absent. Alias
// of the loader's type, kept here for the same reason as
// ErrUnsupportedFormat.
type SheetNotFoundError = loader.SheetNotFoundError
