package sellerboard

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

// DuplicateKeyError is returned when a batch repeats a (date, marketplace,
// asin) key. Duplicates lists every record involved, first occurrences
// included, ordered by index.
type DuplicateKeyError struct {
	Duplicates []entity.DuplicateKey
}

func (e *DuplicateKeyError) Error() string {
	if len(e.Duplicates) == 0 {
		return "duplicate records"
	}
	d := e.Duplicates[0]
	return fmt.Sprintf("%d records share a date/marketplace/asin key, first: %s|%s|%s at index %d",
		len(e.Duplicates), d.Date, d.Marketplace, d.ASIN, d.Index)
}

// AssertUnique fails with *DuplicateKeyError when two records share a
// (date, marketplace, asin) key. SKU is not part of the key.
func AssertUnique(records []entity.Record) error {
	first := make(map[string]int, len(records))
	reported := make(map[string]bool)
	var dups []entity.DuplicateKey

	for i := range records {
		k := records[i].NaturalKey()
		j, seen := first[k]
		if !seen {
			first[k] = i
			continue
		}
		if !reported[k] {
			reported[k] = true
			dups = append(dups, duplicateOf(&records[j], j))
		}
		dups = append(dups, duplicateOf(&records[i], i))
	}
	if len(dups) == 0 {
		return nil
	}

	slices.SortFunc(dups, func(a, b entity.DuplicateKey) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return &DuplicateKeyError{Duplicates: dups}
}

func duplicateOf(r *entity.Record, index int) entity.DuplicateKey {
	return entity.DuplicateKey{
		Date:        r.Date,
		Marketplace: r.Marketplace,
		ASIN:        r.ASIN,
		Index:       index,
	}
}
