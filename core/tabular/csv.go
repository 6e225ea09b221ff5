// Package tabular - CSV row source
package tabular

import (
	"encoding/csv"
	"io"

	"quoteforge/internal/errors"
)

// ReadCSV reads a header-row CSV stream into table rows. Blank lines
// are skipped and ragged records are tolerated; only a structurally
// unreadable stream or a missing header row is an error.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.TypeParsing, "pricing table has no header row")
	}
	if err != nil {
		return nil, errors.Parsing("failed to read pricing table header", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Parsing("failed to read pricing table row", err)
		}
		rows = append(rows, NewRow(header, record))
	}

	return rows, nil
}
