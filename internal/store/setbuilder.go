package store

import (
	"fmt"
	"strings"
)

// setBuilder builds parameterized SET clauses for partial updates.
// Nil-valued fields are skipped, so callers can hand over a sparse field
// struct and get exactly the writes it implies.
type setBuilder struct {
	assignments []string
	args        []any
	argIndex    int
}

func newSetBuilder() *setBuilder {
	return &setBuilder{argIndex: 1}
}

// Add appends an assignment for a non-nil field pointer. Nil pointers are
// skipped; unsupported types are ignored.
func (b *setBuilder) Add(column string, value any) {
	switch v := value.(type) {
	case *string:
		if v == nil {
			return
		}
		b.add(column, *v)
	case *float64:
		if v == nil {
			return
		}
		b.add(column, *v)
	}
}

func (b *setBuilder) add(column string, arg any) {
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, b.argIndex))
	b.args = append(b.args, arg)
	b.argIndex++
}

// Build returns the SET clause body (without the SET keyword) and its args.
// Returns ("", nil) when nothing was added.
func (b *setBuilder) Build() (string, []any) {
	if len(b.assignments) == 0 {
		return "", nil
	}
	return strings.Join(b.assignments, ", "), b.args
}
