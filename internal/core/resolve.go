package core

// resolve.go is the field resolver: it extracts canonical values from a raw
// row whose column labels vary across sources.
//
// For each logical field its FieldSpec alias list is scanned in declared order
// and the first label present in the row with a non-empty value wins. A field
// with no matching alias is absent — which is not the same as zero. Numeric
// fields coerce through ParseNumber; an uncoercible value is absent too, and
// the zero fallback is applied only where a value is actually written.

import (
	"strings"

	"github.com/fermworks/plantimport/internal/schema"
)

// Resolved holds the canonical fields extracted from one row.
type Resolved struct {
	text map[string]string
	nums map[string]Number
}

// ResolveRow resolves a raw row against the given field specs. Pure: the row
// is never modified and no resolution failure is an error.
func ResolveRow(row Row, specs []schema.FieldSpec) Resolved {
	// Header labels are matched case-insensitively; index once per row.
	// ParseRows guarantees labels are unique under that folding, so the
	// index is deterministic.
	index := make(map[string]string, len(row))
	for label, value := range row {
		index[strings.ToLower(strings.TrimSpace(label))] = value
	}

	res := Resolved{
		text: make(map[string]string),
		nums: make(map[string]Number),
	}

	for _, spec := range specs {
		raw, ok := firstAlias(index, spec.Aliases)
		if !ok {
			continue
		}
		if spec.Normalizer != nil {
			raw = spec.Normalizer(raw)
		}
		switch spec.Kind {
		case schema.KindNumeric:
			if n := ParseNumber(raw); n.Present {
				res.nums[spec.Field] = n
			}
		default:
			res.text[spec.Field] = raw
		}
	}
	return res
}

// firstAlias returns the first alias present in the row with a non-empty
// value, in declared order.
func firstAlias(index map[string]string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		v, ok := index[strings.ToLower(alias)]
		if !ok {
			continue
		}
		v = CleanCell(v)
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// Text returns the resolved text value for a logical field, or "" if absent.
func (r Resolved) Text(field string) string {
	return r.text[field]
}

// Number returns the resolved numeric value for a logical field. Absent and
// uncoercible cells yield an absent Number.
func (r Resolved) Number(field string) Number {
	return r.nums[field]
}
