package parser

import (
	"regexp"
	"strings"

	"raciboard/pkg/raci/models"
)

// ClassifierParams holds the data-distribution thresholds of the column
// classifier. The defaults are heuristic, tuned against real sheets
// rather than derived; they are parameters, not invariants.
type ClassifierParams struct {
	// RaciMin is both the minimum RACI-normalizable fraction and the
	// minimum fraction of short (≤3 char) values for a raci column.
	RaciMin float64 `yaml:"raci_min"`
	// MaturityMin / MaturityNumericMin gate maturity columns.
	MaturityMin        float64 `yaml:"maturity_min"`
	MaturityNumericMin float64 `yaml:"maturity_numeric_min"`
	// NameUniqueMin, NameAvgLenMin and NameNumericMax describe a
	// plausible name column: diverse, textual, not mostly numbers.
	NameUniqueMin  float64 `yaml:"name_unique_min"`
	NameAvgLenMin  float64 `yaml:"name_avg_len_min"`
	NameNumericMax float64 `yaml:"name_numeric_max"`
	// CategoryUniqueMax flags repeating short labels as grouping.
	CategoryUniqueMax float64 `yaml:"category_unique_max"`
	// DescAvgLenMin / DescUniqueMin describe long, diverse description text.
	DescAvgLenMin float64 `yaml:"desc_avg_len_min"`
	DescUniqueMin float64 `yaml:"desc_unique_min"`
	// NumericSkipMin marks purely numeric non-maturity columns.
	NumericSkipMin float64 `yaml:"numeric_skip_min"`
}

// DefaultClassifierParams returns the standard classifier thresholds.
func DefaultClassifierParams() ClassifierParams {
	return ClassifierParams{
		RaciMin:            0.3,
		MaturityMin:        0.4,
		MaturityNumericMin: 0.4,
		NameUniqueMin:      0.5,
		NameAvgLenMin:      3,
		NameNumericMax:     0.5,
		CategoryUniqueMax:  0.3,
		DescAvgLenMin:      30,
		DescUniqueMin:      0.7,
		NumericSkipMin:     0.8,
	}
}

// ClassifyColumns assigns every column index exactly one tag, first by
// header keywords (delta, status, priority, id — in that precedence),
// then by data distribution for columns the header pass left open.
func ClassifyColumns(headers []string, dataRows [][]string, p ClassifierParams) map[int]models.ColumnTag {
	numCols := len(headers)
	tags := make(map[int]models.ColumnTag, numCols)

	colValues := make([][]string, numCols)
	for ci := 0; ci < numCols; ci++ {
		for _, row := range dataRows {
			if ci < len(row) {
				if v := NormalizeText(row[ci]); v != "" {
					colValues[ci] = append(colValues[ci], v)
				}
			}
		}
	}

	headerLower := make([]string, numCols)
	for ci, h := range headers {
		headerLower[ci] = strings.ToLower(NormalizeText(h))
	}

	// Pass 1: header keywords. First match wins and short-circuits the
	// remaining checks for that column.
	for ci, hl := range headerLower {
		if hl == "" {
			continue
		}
		switch {
		case containsAny(hl, deltaKeywords):
			tags[ci] = models.TagDelta
		case containsAny(hl, statusKeywords):
			tags[ci] = models.TagStatus
		case containsAny(hl, priorityKeywords):
			tags[ci] = models.TagPriority
		case isIDHeader(hl):
			tags[ci] = models.TagID
		}
	}

	// Pass 2: data distribution for unresolved columns, evaluated as an
	// ordered rule list with early exit.
	nameFound := false
	descFound := false
	for ci := 0; ci < numCols; ci++ {
		if _, done := tags[ci]; done {
			continue
		}
		values := colValues[ci]
		total := len(values)
		if total == 0 {
			tags[ci] = models.TagEmpty
			continue
		}
		hl := headerLower[ci]

		raciCount, shortCount, matCount, numericCount := 0, 0, 0, 0
		lenSum := 0
		distinct := make(map[string]bool, total)
		for _, v := range values {
			if IsRaci(v) {
				raciCount++
			}
			if len(strings.TrimSpace(v)) <= 3 {
				shortCount++
			}
			if IsMaturityNumber(v, 100) {
				matCount++
			}
			if pureNumber.MatchString(v) {
				numericCount++
			}
			lenSum += len(v)
			distinct[strings.ToLower(v)] = true
		}
		raciPct := float64(raciCount) / float64(total)
		matPct := float64(matCount) / float64(total)
		numericPct := float64(numericCount) / float64(total)
		uniqueRatio := float64(len(distinct)) / float64(total)
		avgLen := float64(lenSum) / float64(total)

		// A raci column has many normalizable values, most of them short
		// letters; numeric 1–5 columns overlap with maturity and must not
		// land here.
		if raciPct > p.RaciMin && float64(shortCount)/float64(total) > p.RaciMin {
			tags[ci] = models.TagRaci
			continue
		}

		switch {
		case matPct > p.MaturityMin && numericPct > p.MaturityNumericMin:
			// The first maturity-like column defaults to "now"; a target
			// keyword in the header, or an already-assigned now column,
			// makes it "target".
			if containsAny(hl, targetKeywords) || hasTag(tags, models.TagMaturityNow) {
				tags[ci] = models.TagMaturityTarget
			} else {
				tags[ci] = models.TagMaturityNow
			}
		case containsAny(hl, descriptionKeywords):
			tags[ci] = models.TagDescription
			descFound = true
		case containsAny(hl, categoryKeywords):
			tags[ci] = models.TagCategory
		case containsAny(hl, nameKeywords):
			tags[ci] = models.TagName
			nameFound = true
		case !nameFound && avgLen > p.NameAvgLenMin && uniqueRatio > p.NameUniqueMin && numericPct < p.NameNumericMax:
			// First diverse text column anchors the capability names,
			// unless its values repeat enough to look like grouping.
			if uniqueRatio < p.CategoryUniqueMax && total > 5 {
				tags[ci] = models.TagCategory
			} else {
				tags[ci] = models.TagName
				nameFound = true
			}
		case !descFound && avgLen > p.DescAvgLenMin && uniqueRatio > p.DescUniqueMin:
			tags[ci] = models.TagDescription
			descFound = true
		case uniqueRatio < p.CategoryUniqueMax && total > 3:
			tags[ci] = models.TagCategory
		case numericPct > p.NumericSkipMin:
			tags[ci] = models.TagNumericSkip
		default:
			tags[ci] = models.TagUnknown
		}
	}

	// The extractor anchors on a name column, so guarantee one: promote
	// the first unknown column, or column 0 as a last resort.
	if !hasTag(tags, models.TagName) {
		for ci := 0; ci < numCols; ci++ {
			if tags[ci] == models.TagUnknown {
				tags[ci] = models.TagName
				break
			}
		}
		if !hasTag(tags, models.TagName) && numCols > 0 {
			tags[0] = models.TagName
		}
	}

	return tags
}

// FirstColumn returns the lowest column index carrying the tag, or -1.
func FirstColumn(tags map[int]models.ColumnTag, tag models.ColumnTag) int {
	best := -1
	for ci, t := range tags {
		if t == tag && (best == -1 || ci < best) {
			best = ci
		}
	}
	return best
}

// RaciColumns returns the raci-tagged column indexes in ascending order.
func RaciColumns(tags map[int]models.ColumnTag) []int {
	var cols []int
	max := -1
	for ci, t := range tags {
		if t == models.TagRaci && ci > max {
			max = ci
		}
	}
	for ci := 0; ci <= max; ci++ {
		if tags[ci] == models.TagRaci {
			cols = append(cols, ci)
		}
	}
	return cols
}

func hasTag(tags map[int]models.ColumnTag, tag models.ColumnTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// idAffixed matches headers where an id keyword is followed or preceded
// by separator characters, e.g. "ref #" or "no." — but not "now".
var idAffixed = func() []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, kw := range idKeywords {
		esc := regexp.QuoteMeta(kw)
		res = append(res,
			regexp.MustCompile(`^`+esc+`[\s._#\-]+`),
			regexp.MustCompile(`^[\s._#\-]+`+esc+`$`))
	}
	return res
}()

func isIDHeader(hl string) bool {
	if idExactHeaders[hl] {
		return true
	}
	for _, kw := range idKeywords {
		if hl == kw {
			return true
		}
	}
	for _, re := range idAffixed {
		if re.MatchString(hl) {
			return true
		}
	}
	return false
}
