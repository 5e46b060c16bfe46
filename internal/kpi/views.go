package kpi

import (
	"github.com/jekabolt/sellerboard-kpi/internal/civil"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

// FilterByDateRange keeps records dated within [start, end].
func FilterByDateRange(records []entity.Record, start, end string) []entity.Record {
	out := make([]entity.Record, 0, len(records))
	for i := range records {
		if civil.Between(records[i].Date, start, end) {
			out = append(out, records[i])
		}
	}
	return out
}

// WithoutDate drops the point keyed by date. The dashboard uses it to hide
// the still incomplete current day from daily charts.
func WithoutDate(points []entity.KpiPoint, date string) []entity.KpiPoint {
	out := make([]entity.KpiPoint, 0, len(points))
	for _, p := range points {
		if p.Date != date {
			out = append(out, p)
		}
	}
	return out
}

// Tiles returns the headline figures for today: the three previous days and
// the month to date, which runs from the first of today's month through
// yesterday and is empty on the first.
func Tiles(records []entity.Record, today string) entity.RecentTiles {
	day := func(offset int) entity.KpiPoint {
		d := civil.AddDays(today, -offset)
		return entity.KpiPoint{Date: d, KpiSet: Aggregate(FilterByDateRange(records, d, d))}
	}
	mtd := entity.DateRange{
		Start: civil.FirstOfMonth(today),
		End:   civil.AddDays(today, -1),
	}
	return entity.RecentTiles{
		Yesterday:          day(1),
		DayBeforeYesterday: day(2),
		ThreeDaysAgo:       day(3),
		MonthToDate:        Aggregate(FilterByDateRange(records, mtd.Start, mtd.End)),
		MonthToDateRange:   mtd,
	}
}
