package parser

import "testing"

func TestNormalizeRaci(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Standard letters, any case, surrounding space.
		{"R", "R"},
		{"a", "A"},
		{" c ", "C"},
		{"i", "I"},
		// Extended dialects map onto the standard four.
		{"S", "C"},
		{"V", "C"},
		{"D", "R"},
		{"P", "R"},
		{"X", "R"},
		{"O", "R"},
		{"L", "R"},
		// Full words.
		{"Responsible", "R"},
		{"ACCOUNTABLE", "A"},
		{"consulted", "C"},
		{"Informed", "I"},
		{"Driver", "R"},
		{"Approver", "A"},
		{"Support", "C"},
		{"yes", "R"},
		// Multi-value cells resolve to the highest-weight token.
		{"R/A", "R"},
		{"C/R", "R"},
		{"R,C", "R"},
		{"R & C", "R"},
		{"A/I", "A"},
		{"C, I", "C"},
		// Prefix of a known word.
		{"Accountable for delivery", "A"},
		{"Responsible (primary)", "R"},
		// Not responsibility markers.
		{"", ""},
		{"see notes", ""},
		{"3", ""},
		{"Design API", ""},
		{"not applicable", ""},
	}

	for _, tt := range tests {
		if got := NormalizeRaci(tt.input); got != tt.expected {
			t.Errorf("NormalizeRaci(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeRaciIdempotent(t *testing.T) {
	inputs := []string{"R", "A", "C", "I", "Responsible", "R/A", "S", "see notes"}
	for _, in := range inputs {
		once := NormalizeRaci(in)
		if twice := NormalizeRaci(once); twice != once {
			t.Errorf("NormalizeRaci(NormalizeRaci(%q)) = %q, expected %q", in, twice, once)
		}
	}
}

func TestIsMaturityNumber(t *testing.T) {
	tests := []struct {
		input    string
		scaleMax int
		expected bool
	}{
		{"3", 5, true},
		{"0", 5, true},
		{"5", 5, true},
		{"6", 5, false},
		{"6", 10, true},
		{"80%", 100, true},
		{"150", 100, false},
		{"4.5", 5, true},
		{"-1", 5, false},
		{"abc", 5, false},
		{"", 5, false},
	}

	for _, tt := range tests {
		if got := IsMaturityNumber(tt.input, tt.scaleMax); got != tt.expected {
			t.Errorf("IsMaturityNumber(%q, %d) = %v, expected %v", tt.input, tt.scaleMax, got, tt.expected)
		}
	}
}

func TestDetectMaturityScale(t *testing.T) {
	tests := []struct {
		values      []string
		expected    int
		percentages bool
	}{
		{[]string{"80%", "60%", "20%"}, 100, true},
		{[]string{"15", "40"}, 100, true},
		{[]string{"7", "3", "9"}, 10, false},
		{[]string{"4", "2", "5"}, 5, false},
		{[]string{"3"}, 5, false},
		{[]string{"abc"}, 5, false},
		{nil, 5, false},
	}

	for _, tt := range tests {
		scale, pct := DetectMaturityScale(tt.values)
		if scale != tt.expected || pct != tt.percentages {
			t.Errorf("DetectMaturityScale(%v) = (%d, %v), expected (%d, %v)",
				tt.values, scale, pct, tt.expected, tt.percentages)
		}
	}
}

func TestNormalizeMaturity(t *testing.T) {
	tests := []struct {
		input    string
		scale    int
		expected int
	}{
		// The same underlying level on each supported scale.
		{"80", 100, 4},
		{"80%", 100, 4},
		{"8", 10, 4},
		{"4", 5, 4},
		// Rounding and clamping.
		{"90", 100, 5},
		{"3.6", 5, 4},
		{"110", 100, 5},
		{"0", 5, 0},
	}

	for _, tt := range tests {
		got := NormalizeMaturity(tt.input, tt.scale)
		if got == nil {
			t.Errorf("NormalizeMaturity(%q, %d) = nil, expected %d", tt.input, tt.scale, tt.expected)
			continue
		}
		if *got != tt.expected {
			t.Errorf("NormalizeMaturity(%q, %d) = %d, expected %d", tt.input, tt.scale, *got, tt.expected)
		}
	}

	if got := NormalizeMaturity("abc", 5); got != nil {
		t.Errorf("NormalizeMaturity(\"abc\", 5) = %d, expected nil", *got)
	}
	if got := NormalizeMaturity("", 5); got != nil {
		t.Errorf("NormalizeMaturity(\"\", 5) = %d, expected nil", *got)
	}
}

func TestShortCode(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"PM", "PM"},
		{"Dev", "DEV"},
		{"Sales", "SALES"},
		{"Product Manager", "PM"},
		{"Quality Assurance Lead", "QAL"},
		{"Engineering", "NGNR"},
	}

	for _, tt := range tests {
		if got := ShortCode(tt.label); got != tt.expected {
			t.Errorf("ShortCode(%q) = %q, expected %q", tt.label, got, tt.expected)
		}
	}
}

func TestMakeID(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"Product Manager", "product_manager"},
		{"R&D Team", "rd_team"},
		{"  Dev Ops  ", "dev_ops"},
		{"QA", "qa"},
	}

	for _, tt := range tests {
		if got := MakeID(tt.label); got != tt.expected {
			t.Errorf("MakeID(%q) = %q, expected %q", tt.label, got, tt.expected)
		}
	}
}

func TestStripNumbering(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1. Strategy", "Strategy"},
		{"2) Operations", "Operations"},
		{"10: Security", "Security"},
		{"a) Governance", "Governance"},
		{"• Delivery", "Delivery"},
		{"Strategy", "Strategy"},
		{"1.", "1."},
	}

	for _, tt := range tests {
		if got := StripNumbering(tt.input); got != tt.expected {
			t.Errorf("StripNumbering(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsSummaryRow(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"TOTAL", true},
		{"Grand Total", true},
		{"Category Average", true},
		{"avg", true},
		{"Design API", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSummaryRow(tt.input); got != tt.expected {
			t.Errorf("IsSummaryRow(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsUnfilled(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"TBD", true},
		{"Open Position", true},
		{"Vacant", true},
		{"New Hire ★", true},
		{"Product Manager", false},
	}

	for _, tt := range tests {
		if got := IsUnfilled(tt.input); got != tt.expected {
			t.Errorf("IsUnfilled(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
