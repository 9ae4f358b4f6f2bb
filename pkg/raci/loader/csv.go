package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"raciboard/pkg/raci/models"
)

// sniffLimit bounds how much of the file feeds delimiter detection.
const sniffLimit = 4096

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// loadCSV decodes delimited text into a grid. Encoding fallback order:
// UTF-8 (with or without BOM), Windows-1252, Latin-1. The delimiter is
// sniffed from comma, semicolon, tab and pipe counts.
func loadCSV(data []byte) (models.Grid, string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	text := decodeText(data)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("read delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, "", fmt.Errorf("delimited file has no rows")
	}
	return models.Grid(records).Normalized(), "CSV", nil
}

// decodeText returns the content as UTF-8, decoding legacy single-byte
// encodings when the raw bytes are not valid UTF-8. Windows-1252 is
// preferred; its undefined code points fall back to Latin-1.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil &&
		!bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 decoding cannot fail on arbitrary bytes; keep the raw
		// text as a last resort.
		return string(data)
	}
	return string(decoded)
}

// sniffDelimiter counts candidate separators in the leading sample and
// picks the most frequent, defaulting to comma.
func sniffDelimiter(text string) rune {
	sample := text
	if len(sample) > sniffLimit {
		sample = sample[:sniffLimit]
	}
	if i := strings.IndexByte(sample, '\n'); i > 0 {
		sample = sample[:i]
	}

	best, bestCount := ',', 0
	for _, cand := range []rune{',', ';', '\t', '|'} {
		if n := strings.Count(sample, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	return best
}
