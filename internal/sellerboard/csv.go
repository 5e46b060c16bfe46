package sellerboard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseCSV reads a whole report and maps it. A UTF-8 byte order mark, quoted
// fields, blank lines and rows of uneven width are tolerated. An empty input
// maps to no records with every required column missing.
func ParseCSV(r io.Reader) (MapResult, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Map(nil, nil), nil
	}
	if err != nil {
		return MapResult{}, fmt.Errorf("read header: %w", err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return MapResult{}, fmt.Errorf("read rows: %w", err)
	}
	return Map(header, rows), nil
}
