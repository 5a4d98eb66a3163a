// Package tabular parses raw request payloads that may be delimited
// tabular data, and selects the column most likely to hold prose.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/textflow/textflow/pkg/textflow/internalerr"
)

// Table is an ordered set of named columns with row-aligned string cells.
// Every column holds exactly RowCount values. Columns are appended, never
// rewritten, after construction; the translation stage adds a derived
// column rather than mutating the source one.
type Table struct {
	names  []string
	cols   map[string][]string
	nrows  int
}

// NewTable builds a table from ordered header names. Duplicate names keep
// the first occurrence and get a numeric suffix, so every column remains
// addressable.
func NewTable(header []string) *Table {
	t := &Table{cols: make(map[string][]string, len(header))}
	for _, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("col_%d", len(t.names)+1)
		}
		if _, exists := t.cols[name]; exists {
			name = fmt.Sprintf("%s_%d", name, len(t.names)+1)
		}
		t.names = append(t.names, name)
		t.cols[name] = nil
	}
	return t
}

// AppendRow adds one row. The row must have exactly one cell per column.
func (t *Table) AppendRow(cells []string) error {
	if len(cells) != len(t.names) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.names))
	}
	for i, name := range t.names {
		t.cols[name] = append(t.cols[name], strings.TrimSpace(cells[i]))
	}
	t.nrows++
	return nil
}

// AddColumn appends a derived column. The value count must match the
// current row count.
func (t *Table) AddColumn(name string, values []string) error {
	if len(values) != t.nrows {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), t.nrows)
	}
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}
	t.names = append(t.names, name)
	t.cols[name] = values
	return nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return t.nrows }

// ColumnNames returns the column names in original order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the values of a named column.
func (t *Table) Column(name string) ([]string, bool) {
	vals, ok := t.cols[name]
	return vals, ok
}

// NumericMeans returns, in column order, the arithmetic mean of every
// column whose non-empty cells all parse as numbers. Id-like columns are
// excluded the same way target selection excludes them.
func (t *Table) NumericMeans() map[string]float64 {
	means := make(map[string]float64)
	for _, name := range t.names {
		if isReservedName(name) {
			continue
		}
		var sum float64
		var n int
		numeric := true
		for _, v := range t.cols[name] {
			if v == "" {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				numeric = false
				break
			}
			sum += f
			n++
		}
		if numeric && n > 0 {
			means[name] = sum / float64(n)
		}
	}
	return means
}

// delimiters considered during sniffing, in priority order for ties.
var delimiters = []rune{',', ';', '\t', '|'}

// Sniff inspects the first non-empty line of raw input and returns the
// most frequent candidate delimiter. ok is false when no candidate occurs,
// meaning the payload should be treated as plain prose.
func Sniff(raw string) (delim rune, ok bool) {
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		best, bestCount := ' ', 0
		for _, d := range delimiters {
			if c := strings.Count(line, string(d)); c > bestCount {
				best, bestCount = d, c
			}
		}
		if bestCount == 0 {
			return 0, false
		}
		return best, true
	}
	return 0, false
}

// Parse reads trimmed raw input as a delimited table. The first row is the
// header. Malformed rows (wrong cell count, unparseable quoting) are
// skipped rather than failing the parse. A table with zero columns or zero
// data rows is an ingest failure.
func Parse(raw string) (*Table, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, internalerr.ErrInvalidData
	}

	delim, ok := Sniff(trimmed)
	if !ok {
		return nil, internalerr.ErrInvalidData
	}

	r := csv.NewReader(strings.NewReader(trimmed))
	r.Comma = delim
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, internalerr.ErrInvalidData
	}
	table := NewTable(header)
	if len(table.names) == 0 {
		return nil, internalerr.ErrInvalidData
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip rows the reader cannot make sense of.
			continue
		}
		if len(record) != len(table.names) {
			continue
		}
		if err := table.AppendRow(record); err != nil {
			continue
		}
	}

	if table.nrows == 0 {
		return nil, internalerr.ErrInvalidData
	}
	return table, nil
}
