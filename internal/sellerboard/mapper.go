package sellerboard

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/jmoiron/sqlx/reflectx"
)

// MapResult is the outcome of mapping a report onto entity.Record.
type MapResult struct {
	Records []entity.Record
	// MissingColumns lists required columns absent from the header row.
	MissingColumns []string
	// SkippedRows counts rows dropped for an empty or invalid required field.
	SkippedRows int
}

var fieldIndexes = recordFieldIndexes()

// recordFieldIndexes resolves every column key to its entity.Record field
// through the same db tags the store scans with.
func recordFieldIndexes() [][]int {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	m := reflectx.NewMapper("db")
	idx := m.TraversalsByName(reflect.TypeOf(entity.Record{}), keys)
	for i, k := range keys {
		if len(idx[i]) == 0 {
			panic(fmt.Sprintf("entity.Record has no field tagged db:%q", k))
		}
	}
	return idx
}

// Map maps header and rows onto records. It is header order independent and
// never fails: bad rows are counted in SkippedRows, absent required columns
// are reported once in MissingColumns.
func Map(header []string, rows [][]string) MapResult {
	pos := headerPositions(header)

	res := MapResult{
		Records: make([]entity.Record, 0, len(rows)),
	}
	for i, c := range columns {
		if c.Required && pos[i] < 0 {
			res.MissingColumns = append(res.MissingColumns, c.Key)
		}
	}

	for _, row := range rows {
		rec, ok := mapRow(row, pos)
		if !ok {
			res.SkippedRows++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// headerPositions returns, per column, the index of the first matching
// header spelling in the report, or -1.
func headerPositions(header []string) []int {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := byName[h]; !ok {
			byName[h] = i
		}
	}

	pos := make([]int, len(columns))
	for i, c := range columns {
		pos[i] = -1
		for _, h := range c.Headers {
			if p, ok := byName[h]; ok {
				pos[i] = p
				break
			}
		}
	}
	return pos
}

func mapRow(row []string, pos []int) (entity.Record, bool) {
	var rec entity.Record
	v := reflect.ValueOf(&rec).Elem()

	for i, c := range columns {
		raw := ""
		if p := pos[i]; p >= 0 && p < len(row) {
			raw = strings.TrimSpace(row[p])
		}

		f := reflectx.FieldByIndexes(v, fieldIndexes[i])
		switch c.Kind {
		case kindDate:
			d, ok := ResolveDate(raw)
			if !ok {
				return entity.Record{}, false
			}
			f.SetString(d)
		case kindNumber:
			f.Set(reflect.ValueOf(ParseNumber(raw)))
		default:
			if c.Required && raw == "" {
				return entity.Record{}, false
			}
			f.SetString(raw)
		}
	}
	return rec, true
}
