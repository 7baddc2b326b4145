package core

// rows.go is the tabular row source: it decodes uploaded bytes into an
// ordered sequence of label->value rows, using the first table in document
// order.
//
// Real exports rarely start with the header: title rows, revision blocks,
// and blank lines come first — and a title row can span several cells. The
// header is therefore anchored on the ingestion path's own vocabulary: the
// first row within MaxHeaderSearchRows containing at least one known column
// alias wins. Input with no such row fails loudly rather than yielding rows
// that silently resolve to nothing.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fermworks/plantimport/internal/schema"
)

// MaxHeaderSearchRows is the maximum number of rows scanned for the header.
var MaxHeaderSearchRows = 20

// Row maps raw header labels to raw cell values.
type Row map[string]string

// ParseRows decodes the first table of the document into ordered rows. The
// header row is located by the given field specs' aliases. Empty rows are
// skipped; cells beyond the header width are dropped. When two header labels
// fold to the same case-insensitive key, the leftmost column wins.
func ParseRows(data []byte, specs []schema.FieldSpec) ([]Row, error) {
	records, err := parseCSV(sanitizeUTF8(data))
	if err != nil {
		return nil, fmt.Errorf("parse rows: %w: %v", ErrMalformedTable, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headerIdx := findHeaderRow(records, aliasSet(specs))
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: no header row found in the first %d rows", ErrMalformedTable, MaxHeaderSearchRows)
	}

	header := make([]string, len(records[headerIdx]))
	seen := make(map[string]bool, len(header))
	for i, cell := range records[headerIdx] {
		label := CleanCell(cell)
		key := strings.ToLower(label)
		if label == "" || seen[key] {
			continue
		}
		seen[key] = true
		header[i] = label
	}

	var rows []Row
	for _, record := range records[headerIdx+1:] {
		if isEmptyRow(record) {
			continue
		}
		row := make(Row, len(header))
		for i, label := range header {
			if label == "" || i >= len(record) {
				continue
			}
			row[label] = CleanCell(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RenderFirstSheetAsText flattens the first table to tab-separated lines for
// the document-extraction path. Decode failures fall back to the raw text:
// the extractor is tolerant of loose input by design.
func RenderFirstSheetAsText(data []byte) string {
	records, err := parseCSV(sanitizeUTF8(data))
	if err != nil {
		return string(sanitizeUTF8(data))
	}

	var b strings.Builder
	for _, record := range records {
		if isEmptyRow(record) {
			continue
		}
		for i, cell := range record {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(CleanCell(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// aliasSet folds every alias of every spec to lowercase for header matching.
func aliasSet(specs []schema.FieldSpec) map[string]bool {
	set := make(map[string]bool)
	for _, spec := range specs {
		for _, alias := range spec.Aliases {
			set[strings.ToLower(alias)] = true
		}
	}
	return set
}

// findHeaderRow returns the index of the first row carrying at least one
// known column alias, or -1. A multi-cell title row never qualifies unless it
// literally contains a column name.
func findHeaderRow(records [][]string, aliases map[string]bool) int {
	maxRows := MaxHeaderSearchRows
	if len(records) < maxRows {
		maxRows = len(records)
	}

	for i := 0; i < maxRows; i++ {
		for _, cell := range records[i] {
			if aliases[strings.ToLower(CleanCell(cell))] {
				return i
			}
		}
	}
	return -1
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid byte sequences so the CSV reader never sees
// broken encoding from legacy spreadsheet exports.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
