// Package output - JSON formatter
package output

import (
	"io"

	json "github.com/goccy/go-json"

	"quoteforge/core/types"
)

// JSONFormatter renders a quote as indented JSON, the shape quote
// persistence stores as an opaque blob.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the quote as JSON
func (f *JSONFormatter) Render(w io.Writer, q *types.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(q)
}
