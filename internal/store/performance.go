package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jekabolt/sellerboard-kpi/internal/dependency"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/jmoiron/sqlx/reflectx"
)

const (
	performanceTable = "marketplace_performance"
	// queryPageSize is the page size QueryRange reads with.
	queryPageSize = 1000
)

// conflict key of marketplace_performance
var performanceKey = map[string]bool{
	"account":     true,
	"date":        true,
	"marketplace": true,
	"asin":        true,
	"sku":         true,
}

type recordColumn struct {
	name  string
	index []int
}

// recordColumns are the marketplace_performance columns in entity.Record
// field order, taken from its db tags.
var recordColumns = func() []recordColumn {
	tm := reflectx.NewMapper("db").TypeMap(reflect.TypeOf(entity.Record{}))
	cols := make([]recordColumn, 0, len(tm.Index))
	for _, fi := range tm.Index {
		if len(fi.Index) != 1 || fi.Name == "" {
			continue
		}
		cols = append(cols, recordColumn{name: fi.Name, index: fi.Index})
	}
	return cols
}()

// recordSelect is the select list for entity.Record with the date rendered
// as a civil date string.
var recordSelect = func() string {
	parts := make([]string, 0, len(recordColumns))
	for _, c := range recordColumns {
		if c.name == "date" {
			parts = append(parts, "DATE_FORMAT(date, '%Y-%m-%d') AS date")
			continue
		}
		parts = append(parts, c.name)
	}
	return strings.Join(parts, ", ")
}()

type performanceStore struct {
	*MYSQLStore
}

// Performance returns an object implementing the Performance interface.
func (ms *MYSQLStore) Performance() dependency.Performance {
	return &performanceStore{
		MYSQLStore: ms,
	}
}

// UpsertRecords writes records in chunks of batchSize rows.
func (ms *performanceStore) UpsertRecords(ctx context.Context, records []entity.Record, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = len(records)
	}

	columns := make([]string, len(recordColumns))
	var update []string
	for i, c := range recordColumns {
		columns[i] = c.name
		if !performanceKey[c.name] {
			update = append(update, c.name)
		}
	}

	var written int64
	for batch, start := 0, 0; start < len(records); batch, start = batch+1, start+batchSize {
		end := min(start+batchSize, len(records))
		rows := make([][]any, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, recordValues(&records[i]))
		}
		if err := BulkUpsert(ctx, ms.db, performanceTable, columns, rows, update); err != nil {
			return written, fmt.Errorf("upsert %s batch %d: %w", performanceTable, batch+1, err)
		}
		written += int64(len(rows))
	}
	return written, nil
}

func recordValues(r *entity.Record) []any {
	v := reflect.ValueOf(r).Elem()
	values := make([]any, len(recordColumns))
	for i, c := range recordColumns {
		values[i] = reflectx.FieldByIndexesReadOnly(v, c.index).Interface()
	}
	return values
}

// DeleteRange removes an account's rows dated within [start, end].
func (ms *performanceStore) DeleteRange(ctx context.Context, account string, start, end string) (int64, error) {
	query := `
		DELETE FROM marketplace_performance
		WHERE account = :account AND date BETWEEN :start AND :end
	`
	n, err := ExecNamedAffected(ctx, ms.db, query, map[string]any{
		"account": account,
		"start":   start,
		"end":     end,
	})
	if err != nil {
		return 0, fmt.Errorf("delete %s %s..%s: %w", performanceTable, start, end, err)
	}
	return n, nil
}

// QueryRange reads all rows dated within [start, end], a page at a time,
// until a short page comes back.
func (ms *performanceStore) QueryRange(ctx context.Context, account string, start, end string) ([]entity.Record, error) {
	where := "date BETWEEN :start AND :end"
	params := map[string]any{
		"start": start,
		"end":   end,
		"limit": queryPageSize,
	}
	if account != "" {
		where += " AND account = :account"
		params["account"] = account
	}
	query := fmt.Sprintf(`
		SELECT %s
		FROM marketplace_performance
		WHERE %s
		ORDER BY date, account, marketplace, asin, sku
		LIMIT :limit OFFSET :offset
	`, recordSelect, where)

	var out []entity.Record
	for offset := 0; ; offset += queryPageSize {
		params["offset"] = offset
		page, err := QueryListNamed[entity.Record](ctx, ms.db, query, params)
		if err != nil {
			return nil, fmt.Errorf("query %s at offset %d: %w", performanceTable, offset, err)
		}
		out = append(out, page...)
		if len(page) < queryPageSize {
			return out, nil
		}
	}
}

// Sample returns the newest rows of an account.
func (ms *performanceStore) Sample(ctx context.Context, account string, limit int) ([]entity.Record, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM marketplace_performance
		WHERE account = :account
		ORDER BY date DESC, marketplace, asin, sku
		LIMIT :limit
	`, recordSelect)
	records, err := QueryListNamed[entity.Record](ctx, ms.db, query, map[string]any{
		"account": account,
		"limit":   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", performanceTable, err)
	}
	return records, nil
}

// Stats returns row counts and date bounds per account.
func (ms *performanceStore) Stats(ctx context.Context) ([]entity.PerformanceStats, error) {
	query := `
		SELECT
			account,
			COUNT(*) AS records,
			DATE_FORMAT(MIN(date), '%Y-%m-%d') AS first_date,
			DATE_FORMAT(MAX(date), '%Y-%m-%d') AS last_date
		FROM marketplace_performance
		GROUP BY account
		ORDER BY account
	`
	stats, err := QueryListNamed[entity.PerformanceStats](ctx, ms.db, query, nil)
	if err != nil {
		return nil, fmt.Errorf("stats %s: %w", performanceTable, err)
	}
	return stats, nil
}
