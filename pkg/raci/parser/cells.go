package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	multiValueSplit = regexp.MustCompile(`[/,&\s]+`)
	idAlnum         = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	idWhitespace    = regexp.MustCompile(`\s+`)
	labelWords      = regexp.MustCompile(`[A-Z][a-z]*|[a-z]+`)
	labelVowels     = regexp.MustCompile(`(?i)[aeiou\s\W]`)
	numberingPrefix = regexp.MustCompile(`^[\d]+[.):\-]\s*`)
	letteredPrefix  = regexp.MustCompile(`^[a-zA-Z][.)]\s*`)
	bulletPrefix    = regexp.MustCompile(`^[•●○◦▪▸►→–—]\s*`)
	pureNumber      = regexp.MustCompile(`^[\d]+\.?[\d]*$`)
	numericLooking  = regexp.MustCompile(`^[\d.,%]+$`)
)

// NormalizeText trims a raw cell value; missing cells become "".
func NormalizeText(raw string) string {
	return strings.TrimSpace(raw)
}

// NormalizeRaci maps a raw cell value onto a standard RACI letter.
//
// Recognized, in priority order: a single standard letter; a single
// extended-dialect letter (RASCI, RACI-VS, DACI, RAPID, X/O/L marks); a
// full word ("Responsible", "Driver", "Yes", ...); a multi-value cell
// ("R/A", "R,C", "R & C") resolved to the highest-weight token; a prefix
// of a known full word. Returns "" when nothing matches — callers treat
// that as "not a responsibility marker", never as an error.
func NormalizeRaci(raw string) string {
	s := NormalizeText(raw)
	if s == "" {
		return ""
	}

	upper := strings.ToUpper(s)
	if raciValues[upper] {
		return upper
	}
	if letter, ok := raciExtended[upper]; ok {
		return letter
	}

	lower := strings.ToLower(s)
	for _, w := range raciFullWords {
		if lower == w.word {
			return w.letter
		}
	}

	// Multi-value cell: map each token and keep the most responsible one.
	best := ""
	for _, tok := range multiValueSplit.Split(upper, -1) {
		tok = strings.TrimSpace(tok)
		letter, ok := raciExtended[tok]
		if !ok {
			continue
		}
		if best == "" || raciPriority[letter] > raciPriority[best] {
			best = letter
		}
	}
	if best != "" {
		return best
	}

	for _, w := range raciFullWords {
		if strings.HasPrefix(lower, w.word) {
			return w.letter
		}
	}
	return ""
}

// IsRaci reports whether the value normalizes to a RACI letter.
func IsRaci(raw string) bool {
	return NormalizeRaci(raw) != ""
}

// IsMaturityNumber reports whether the value parses as a number within
// [0, max(scaleMax, 5)]. A trailing percent sign is ignored.
func IsMaturityNumber(raw string, scaleMax int) bool {
	s := stripPercent(raw)
	if s == "" {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	upper := float64(scaleMax)
	if upper < 5 {
		upper = 5
	}
	return n >= 0 && n <= upper
}

// DetectMaturityScale infers the source scale from a sample of values:
// 100 (percentage) when the maximum exceeds 10, 10 when it exceeds 5,
// otherwise 5.
func DetectMaturityScale(values []string) (scaleMax int, isPercentage bool) {
	maxVal := math.Inf(-1)
	found := false
	for _, v := range values {
		n, err := strconv.ParseFloat(stripPercent(v), 64)
		if err != nil {
			continue
		}
		found = true
		if n > maxVal {
			maxVal = n
		}
	}
	switch {
	case !found:
		return 5, false
	case maxVal > 10:
		return 100, true
	case maxVal > 5:
		return 10, false
	default:
		return 5, false
	}
}

// NormalizeMaturity rescales a maturity value into [0,5] for the given
// source scale, rounding to the nearest integer. Returns nil when the
// value does not parse.
func NormalizeMaturity(raw string, scaleMax int) *int {
	n, err := strconv.ParseFloat(stripPercent(raw), 64)
	if err != nil {
		return nil
	}
	switch scaleMax {
	case 100:
		n /= 20
	case 10:
		n /= 2
	}
	v := int(math.Round(n))
	if v < 0 {
		v = 0
	} else if v > 5 {
		v = 5
	}
	return &v
}

func stripPercent(raw string) string {
	return strings.TrimSpace(strings.TrimRight(NormalizeText(raw), "%"))
}

// ShortCode derives an abbreviation from a role label: the label itself
// when already short, else word initials, else leading consonants.
func ShortCode(label string) string {
	label = strings.TrimSpace(label)
	if len(label) <= 5 {
		return strings.ToUpper(label)
	}
	words := labelWords.FindAllString(label, -1)
	if len(words) >= 2 {
		var initials strings.Builder
		for _, w := range words {
			c := w[0]
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				initials.WriteByte(c)
			}
		}
		if initials.Len() >= 2 && initials.Len() <= 5 {
			return strings.ToUpper(initials.String())
		}
	}
	consonants := labelVowels.ReplaceAllString(label, "")
	if len(consonants) >= 3 {
		if len(consonants) > 4 {
			consonants = consonants[:4]
		}
		return strings.ToUpper(consonants)
	}
	if len(label) > 4 {
		label = label[:4]
	}
	return strings.ToUpper(label)
}

// MakeID produces a snake_case identifier from a label.
func MakeID(label string) string {
	s := idAlnum.ReplaceAllString(label, "")
	s = idWhitespace.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.ToLower(s)
}

// IsUnfilled reports whether a role header describes an open position.
func IsUnfilled(header string) bool {
	lower := strings.ToLower(header)
	for _, kw := range unfilledKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsSummaryRow reports whether a row name marks an aggregate row
// ("Total", "Category Average", ...).
func IsSummaryRow(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, kw := range summaryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsSummaryCategory reports whether a category name marks a footer or
// legend section.
func IsSummaryCategory(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, kw := range summaryCategoryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// StripNumbering removes a leading numbering or bullet prefix from a
// category name: "1. Strategy" becomes "Strategy".
func StripNumbering(name string) string {
	s := numberingPrefix.ReplaceAllString(strings.TrimSpace(name), "")
	s = letteredPrefix.ReplaceAllString(s, "")
	s = bulletPrefix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return strings.TrimSpace(name)
	}
	return s
}
