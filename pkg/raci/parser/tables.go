// Package parser implements layout inference for RACI matrices: cell
// normalization, header detection, column classification, orientation
// detection, row extraction, and the validation report.
package parser

// The tables below are immutable configuration shared by every parse.
// They are never mutated at runtime, so concurrent parses need no
// coordination.

// raciValues are the four standard letters.
var raciValues = map[string]bool{"R": true, "A": true, "C": true, "I": true}

// raciExtended maps single letters from extended dialects (RASCI, RACI-VS,
// DACI, RAPID, plus common marks) onto the standard letters.
var raciExtended = map[string]string{
	"R": "R", "A": "A", "C": "C", "I": "I",
	// RASCI: Supportive
	"S": "C",
	// RACI-VS: Verify
	"V": "C",
	// DACI: Driver
	"D": "R",
	// RAPID: Perform
	"P": "R",
	// X marks and Owner/Lead conventions
	"X": "R",
	"O": "R",
	"L": "R",
}

// raciWord is one full-word lexicon entry. Kept as an ordered slice so
// prefix matching is deterministic.
type raciWord struct {
	word   string
	letter string
}

var raciFullWords = []raciWord{
	{"responsible", "R"}, {"accountable", "A"}, {"consulted", "C"}, {"informed", "I"},
	{"supportive", "C"}, {"support", "C"},
	{"driver", "R"}, {"approver", "A"}, {"contributor", "C"},
	{"perform", "R"}, {"recommend", "C"}, {"input", "C"}, {"decide", "A"},
	{"lead", "R"}, {"owner", "R"}, {"participant", "C"},
	{"verify", "C"}, {"sign-off", "A"}, {"sign off", "A"},
	{"yes", "R"}, {"y", "R"},
}

// raciPriority ranks letters by responsibility weight; multi-value cells
// resolve to the highest-ranked token.
var raciPriority = map[string]int{"R": 4, "A": 3, "C": 2, "I": 1}

var rolePalette = []string{
	"#4ae0b0", "#e0a040", "#6090e0", "#a0b8d0",
	"#e06080", "#80d0d0", "#d080e0", "#c0c060",
	"#50b890", "#d09060", "#7080d0", "#b0c8e0",
	"#d070a0", "#60c0b0", "#c090d0", "#b0b070",
}

var categoryPalette = []string{
	"#8090CC", "#50C890", "#90C850", "#B888CC",
	"#C8A050", "#A080C0", "#C89850", "#6898B8", "#58A8C0",
	"#7888B8", "#60B880", "#A0B850", "#C898C0",
	"#B8A060", "#9078B0", "#D0A858", "#5890A8",
}

// Header keyword lists for column classification, matched as
// case-insensitive substrings unless noted.
var (
	nameKeywords = []string{
		"capability", "name", "activity", "task", "function", "process",
		"item", "deliverable", "work package", "work item", "responsibility",
		"action", "objective", "requirement", "service", "control",
	}
	descriptionKeywords = []string{
		"desc", "description", "details", "notes", "comment", "explanation",
		"definition", "summary", "scope",
	}
	categoryKeywords = []string{
		"category", "domain", "area", "group", "pillar", "section",
		"phase", "stream", "workstream", "department", "team", "module",
		"tower", "theme", "bucket", "cluster",
	}
	deltaKeywords = []string{
		"delta", "uplift", "gap", "Δ", "diff", "difference", "variance",
		"change", "improvement",
	}
	statusKeywords = []string{
		"status", "state", "fill", "progress", "completion",
	}
	priorityKeywords = []string{
		"priority", "prio", "importance", "urgency", "rank", "weight",
	}
	// idKeywords require an exact or affixed match to keep "no" from
	// matching inside "now".
	idKeywords = []string{
		"id", "#", "no", "number", "ref", "reference", "code", "key",
	}
	idExactHeaders = map[string]bool{
		"#": true, "id": true, "no": true, "no.": true,
		"ref": true, "ref.": true, "key": true,
	}
)

// targetKeywords distinguish a maturity_target column from maturity_now.
var targetKeywords = []string{
	"target", "tgt", "future", "goal", "projected", "to-be", "to be",
	"desired", "planned", "expected", "with",
}

// unfilledKeywords flag role headers describing open positions.
var unfilledKeywords = []string{
	"open", "unfilled", "vacant", "★", "tbd", "tbc", "hire", "needed", "new",
}

// summaryKeywords flag data rows that are aggregates rather than
// capabilities.
var summaryKeywords = []string{
	"average", "avg", "total", "sum", "count", "mean", "median",
	"grand total", "subtotal", "sub-total", "summary",
	"category average", "section total",
}

// summaryCategoryKeywords flag categories that are footer or legend
// sections rather than real data.
var summaryCategoryKeywords = []string{
	"average", "avg", "total", "sum", "count", "legend", "key",
	"summary", "appendix", "reference", "notes", "glossary",
	"responsible (r)", "accountable (a)", "consulted (c)", "informed (i)",
	"raci legend", "raci key", "raci count", "count by role",
}
