package core

// convert.go provides value cleanup and numeric coercion for spreadsheet
// cells.
//
// Energy balance and requirement sheets carry the usual spreadsheet
// artifacts: BOM markers, Excel formula prefixes (="value"), currency
// symbols, thousands separators, and accounting-style negatives "(123.45)".
// Coercion is deliberately permissive: an uncoercible cell resolves to an
// absent Number, never an error, and the zero default is applied only at the
// final write boundary.

import (
	"regexp"
	"strconv"
	"strings"
)

// numericPattern validates a cell after cleanup. Matches integers, decimals,
// and scientific notation.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Number is an optional numeric value. Present distinguishes a resolved
// value (including an explicit zero) from an absent or uncoercible cell.
type Number struct {
	Value   float64
	Present bool
}

// Num returns a present Number.
func Num(v float64) Number {
	return Number{Value: v, Present: true}
}

// OrZero applies the numeric fallback at the write boundary: absent becomes 0.
func (n Number) OrZero() float64 {
	if !n.Present {
		return 0
	}
	return n.Value
}

// ParseNumber coerces a raw cell to a Number. Empty or unparseable input
// yields an absent Number.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}

	// Accounting format "(123.45)" means negative
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Strip currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if negative {
		s = "-" + s
	}

	if !numericPattern.MatchString(s) {
		return Number{}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}
	}
	return Num(v)
}

// CleanCell strips common CSV artifacts from a cell value: surrounding
// whitespace, UTF-8 BOM, Excel formula prefix (="value"), and stray
// surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\ufeff")

	// Excel formula-wrapped text: ="value"
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}

	return strings.TrimSpace(s)
}
