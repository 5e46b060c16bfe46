package kpi

import (
	"github.com/jekabolt/sellerboard-kpi/internal/civil"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

const (
	DefaultDays  = 30
	DefaultWeeks = 12
)

// BuildDailySeries returns exactly days points, one per calendar day, ending
// at today inclusive. Days without records are zero.
func BuildDailySeries(records []entity.Record, days int, today string) []entity.KpiPoint {
	if days <= 0 || !civil.Valid(today) {
		return []entity.KpiPoint{}
	}
	first := civil.AddDays(today, -(days - 1))

	buckets := make(map[string]*entity.Totals)
	for i := range records {
		d := records[i].Date
		if !civil.Between(d, first, today) {
			continue
		}
		addTo(buckets, d, &records[i])
	}
	return fillSeries(buckets, first, days, 1)
}

// BuildWeeklySeries returns exactly weeks points keyed by ISO-week Monday,
// ending at the week containing today. Weeks without records are zero.
func BuildWeeklySeries(records []entity.Record, weeks int, today string) []entity.KpiPoint {
	if weeks <= 0 || !civil.Valid(today) {
		return []entity.KpiPoint{}
	}
	last := civil.MondayOf(today)
	first := civil.AddDays(last, -7*(weeks-1))

	buckets := make(map[string]*entity.Totals)
	for i := range records {
		monday := civil.MondayOf(records[i].Date)
		if monday == "" || !civil.Between(monday, first, last) {
			continue
		}
		addTo(buckets, monday, &records[i])
	}
	return fillSeries(buckets, first, weeks, 7)
}

func addTo(buckets map[string]*entity.Totals, key string, r *entity.Record) {
	t, ok := buckets[key]
	if !ok {
		z := zeroTotals()
		t = &z
		buckets[key] = t
	}
	add(t, r)
}

// fillSeries walks n buckets of step days from first, filling gaps with zero.
func fillSeries(buckets map[string]*entity.Totals, first string, n, step int) []entity.KpiPoint {
	points := make([]entity.KpiPoint, 0, n)
	cur := first
	for range n {
		t := zeroTotals()
		if b, ok := buckets[cur]; ok {
			t = *b
		}
		points = append(points, entity.KpiPoint{Date: cur, KpiSet: Derive(t)})
		cur = civil.AddDays(cur, step)
	}
	return points
}
