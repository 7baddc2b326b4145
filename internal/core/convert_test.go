package core

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		present bool
	}{
		{"plain integer", "42", 42, true},
		{"decimal", "3.75", 3.75, true},
		{"explicit zero", "0", 0, true},
		{"leading plus", "+1.5", 1.5, true},
		{"scientific", "1.2e3", 1200, true},
		{"thousands separator", "1,250.5", 1250.5, true},
		{"currency dollar", "$500", 500, true},
		{"currency euro", "€500", 500, true},
		{"accounting negative", "(123.45)", -123.45, true},
		{"surrounding whitespace", "  7.5  ", 7.5, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"text", "n/a", 0, false},
		{"mixed", "12 kW", 0, false},
		{"double decimal", "1.2.3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumber(tt.input)
			if got.Present != tt.present {
				t.Fatalf("ParseNumber(%q).Present = %v, want %v", tt.input, got.Present, tt.present)
			}
			if got.Present && got.Value != tt.want {
				t.Errorf("ParseNumber(%q).Value = %v, want %v", tt.input, got.Value, tt.want)
			}
		})
	}
}

func TestNumber_OrZero(t *testing.T) {
	if got := (Number{}).OrZero(); got != 0 {
		t.Errorf("absent OrZero() = %v, want 0", got)
	}
	if got := Num(5).OrZero(); got != 5 {
		t.Errorf("Num(5).OrZero() = %v, want 5", got)
	}
	// An explicit zero stays zero but is present — the distinction the merge
	// logic depends on.
	n := Num(0)
	if !n.Present {
		t.Error("Num(0).Present = false, want true")
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Fermenter", "Fermenter"},
		{"whitespace", "  Fermenter  ", "Fermenter"},
		{"BOM prefix", "\ufeffTag", "Tag"},
		{"excel formula", `="B-101"`, "B-101"},
		{"quoted", `"Pump"`, "Pump"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
