// Package output renders built quotes for humans and machines.
package output

import (
	"io"

	"quoteforge/core/types"
	"quoteforge/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable breakdown
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the quote to w
	Render(w io.Writer, q *types.Quote) error
}

// New returns the formatter for a format name.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}
