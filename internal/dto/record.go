package dto

import (
	"reflect"
	"time"

	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/jmoiron/sqlx/reflectx"
	"github.com/shopspring/decimal"
)

// Record is a stored row with its measures keyed by column name.
type Record struct {
	Account     string             `json:"account"`
	Date        string             `json:"date"`
	Marketplace string             `json:"marketplace"`
	ASIN        string             `json:"asin"`
	SKU         string             `json:"sku"`
	Name        string             `json:"name"`
	Measures    map[string]float64 `json:"measures"`
}

var (
	recordMapper  = reflectx.NewMapper("db")
	decimalType   = reflect.TypeOf(decimal.Decimal{})
	measureFields = func() []*reflectx.FieldInfo {
		tm := recordMapper.TypeMap(reflect.TypeOf(entity.Record{}))
		var fields []*reflectx.FieldInfo
		for _, fi := range tm.Index {
			if len(fi.Index) == 1 && fi.Field.Type == decimalType {
				fields = append(fields, fi)
			}
		}
		return fields
	}()
)

func ConvertRecord(r *entity.Record) Record {
	v := reflect.ValueOf(r).Elem()
	measures := make(map[string]float64, len(measureFields))
	for _, fi := range measureFields {
		d := reflectx.FieldByIndexesReadOnly(v, fi.Index).Interface().(decimal.Decimal)
		measures[fi.Name] = d.InexactFloat64()
	}
	return Record{
		Account:     r.Account,
		Date:        r.Date,
		Marketplace: r.Marketplace,
		ASIN:        r.ASIN,
		SKU:         r.SKU,
		Name:        r.Name,
		Measures:    measures,
	}
}

func ConvertRecords(records []entity.Record) []Record {
	out := make([]Record, 0, len(records))
	for i := range records {
		out = append(out, ConvertRecord(&records[i]))
	}
	return out
}

type PerformanceStats struct {
	Account   string `json:"account"`
	Records   int64  `json:"records"`
	FirstDate string `json:"firstDate,omitempty"`
	LastDate  string `json:"lastDate,omitempty"`
}

type ImportStatus struct {
	Account      string    `json:"account"`
	RunID        string    `json:"runId"`
	Status       string    `json:"status"`
	RowsDeleted  int64     `json:"rowsDeleted"`
	RowsUpserted int64     `json:"rowsUpserted"`
	Error        string    `json:"error,omitempty"`
	FinishedAt   time.Time `json:"finishedAt"`
}

type StoreStatus struct {
	Performance []PerformanceStats `json:"performance"`
	Imports     []ImportStatus     `json:"imports"`
}

func ConvertStoreStatus(st entity.StoreStatus) StoreStatus {
	out := StoreStatus{
		Performance: make([]PerformanceStats, 0, len(st.Performance)),
		Imports:     make([]ImportStatus, 0, len(st.Imports)),
	}
	for _, p := range st.Performance {
		out.Performance = append(out.Performance, PerformanceStats{
			Account:   p.Account,
			Records:   p.Records,
			FirstDate: p.FirstDate.String,
			LastDate:  p.LastDate.String,
		})
	}
	for _, i := range st.Imports {
		out.Imports = append(out.Imports, ImportStatus{
			Account:      i.Account,
			RunID:        i.RunID,
			Status:       string(i.Status),
			RowsDeleted:  i.RowsDeleted,
			RowsUpserted: i.RowsUpserted,
			Error:        i.ErrorMessage.String,
			FinishedAt:   i.FinishedAt,
		})
	}
	return out
}
