// Package tabular parses pricing configuration tables.
//
// The engine only requires a sequence of row-like records with named
// columns; where the rows come from (file, HTTP, spreadsheet export)
// is the caller's concern. This package supplies two sources, CSV and
// HCL, and the row-to-config parser both feed.
package tabular

import "strings"

// Row is one record of a pricing table, keyed by normalized column name.
type Row map[string]string

// normalizeHeader collapses a column header for case- and
// whitespace-tolerant access: "Unit Cost (£)" and "unit cost" match.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	// Strip a trailing parenthetical, e.g. "Unit Cost (£)"
	if i := strings.Index(name, "("); i > 0 {
		name = strings.TrimSpace(name[:i])
	}
	return strings.Join(strings.Fields(name), " ")
}

// NewRow builds a Row from a header record and a value record. Extra
// values beyond the header are dropped; missing ones read as empty.
func NewRow(header, values []string) Row {
	row := make(Row, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if key == "" {
			continue
		}
		if i < len(values) {
			row[key] = strings.TrimSpace(values[i])
		} else {
			row[key] = ""
		}
	}
	return row
}

// Get returns the first non-empty cell among the given column names.
// Names are matched after header normalization.
func (r Row) Get(names ...string) string {
	for _, name := range names {
		if v, ok := r[normalizeHeader(name)]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Set stores a cell under a normalized column name.
func (r Row) Set(name, value string) {
	r[normalizeHeader(name)] = strings.TrimSpace(value)
}
