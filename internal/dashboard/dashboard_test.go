package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/sellerboard-kpi/internal/dependency/mocks"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rec(account, date string, organic int64) entity.Record {
	return entity.Record{
		Account:      account,
		Date:         date,
		Marketplace:  "Amazon.de",
		ASIN:         "B0001",
		SKU:          "SKU-1",
		SalesOrganic: decimal.NewFromInt(organic),
		NetProfit:    decimal.NewFromInt(organic / 10),
	}
}

func newTestDashboard(t *testing.T) (*Dashboard, *mocks.Performance, *mocks.ImportStatus) {
	repo := mocks.NewRepository(t)
	perf := mocks.NewPerformance(t)
	status := mocks.NewImportStatus(t)
	repo.EXPECT().Performance().Return(perf).Maybe()
	repo.EXPECT().ImportStatus().Return(status).Maybe()

	d := New(nil, repo, []string{"main", "second"})
	// 2026-10-15 in Berlin
	d.now = func() time.Time { return time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC) }
	return d, perf, status
}

func TestSummaryDefaultRangeAllAccounts(t *testing.T) {
	d, perf, _ := newTestDashboard(t)
	perf.EXPECT().QueryRange(mock.Anything, "main", "2026-09-15", "2026-10-14").
		Return([]entity.Record{rec("main", "2026-10-01", 100)}, nil).Once()
	perf.EXPECT().QueryRange(mock.Anything, "second", "2026-09-15", "2026-10-14").
		Return([]entity.Record{rec("second", "2026-10-02", 50)}, nil).Once()

	s, err := d.Summary(context.Background(), "", entity.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, entity.DateRange{Start: "2026-09-15", End: "2026-10-14"}, s.Range)
	assert.True(t, s.Total.Revenue.Equal(decimal.NewFromInt(150)))
	require.Len(t, s.Accounts, 2)
	assert.Equal(t, "main", s.Accounts[0].Account)
	assert.Equal(t, "second", s.Accounts[1].Account)

	// served from cache
	_, err = d.Summary(context.Background(), "", entity.DateRange{})
	require.NoError(t, err)
}

func TestSummaryInvalidate(t *testing.T) {
	d, perf, _ := newTestDashboard(t)
	dr := entity.DateRange{Start: "2026-10-01", End: "2026-10-07"}
	perf.EXPECT().QueryRange(mock.Anything, "main", dr.Start, dr.End).
		Return([]entity.Record{rec("main", "2026-10-01", 100)}, nil).Twice()

	_, err := d.Summary(context.Background(), "main", dr)
	require.NoError(t, err)
	d.Invalidate()
	_, err = d.Summary(context.Background(), "main", dr)
	require.NoError(t, err)
}

func TestSummaryErrors(t *testing.T) {
	d, perf, _ := newTestDashboard(t)

	_, err := d.Summary(context.Background(), "unknown", entity.DateRange{})
	require.ErrorIs(t, err, gerr.ErrUnknownAccount)

	_, err = d.Summary(context.Background(), "main", entity.DateRange{Start: "2026-10-07", End: "2026-10-01"})
	require.ErrorIs(t, err, gerr.ErrInvalidRequest)

	boom := errors.New("boom")
	perf.EXPECT().QueryRange(mock.Anything, "main", "2026-10-01", "2026-10-07").Return(nil, boom).Once()
	_, err = d.Summary(context.Background(), "main", entity.DateRange{Start: "2026-10-01", End: "2026-10-07"})
	require.ErrorIs(t, err, boom)
}

func TestSeriesDailyEndsYesterday(t *testing.T) {
	d, perf, _ := newTestDashboard(t)
	perf.EXPECT().QueryRange(mock.Anything, "main", "2026-10-08", "2026-10-15").
		Return([]entity.Record{
			rec("main", "2026-10-14", 100),
			rec("main", "2026-10-15", 999),
		}, nil).Once()

	points, err := d.Series(context.Background(), "main", entity.KpiGranularityDaily, 7)
	require.NoError(t, err)
	require.Len(t, points, 7)
	assert.Equal(t, "2026-10-08", points[0].Date)
	assert.Equal(t, "2026-10-14", points[6].Date)
	assert.True(t, points[6].Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, points[0].Revenue.IsZero())
}

func TestSeriesWeekly(t *testing.T) {
	d, perf, _ := newTestDashboard(t)
	// 2026-10-15 is a Thursday, its week starts 2026-10-12
	perf.EXPECT().QueryRange(mock.Anything, "main", "2026-09-28", "2026-10-15").
		Return([]entity.Record{
			rec("main", "2026-10-04", 10),
			rec("main", "2026-10-15", 20),
		}, nil).Once()

	points, err := d.Series(context.Background(), "main", entity.KpiGranularityWeekly, 3)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, []string{"2026-09-28", "2026-10-05", "2026-10-12"},
		[]string{points[0].Date, points[1].Date, points[2].Date})
	assert.True(t, points[0].Revenue.Equal(decimal.NewFromInt(10)))
	assert.True(t, points[2].Revenue.Equal(decimal.NewFromInt(20)))
}

func TestSeriesUnknownGranularity(t *testing.T) {
	d, _, _ := newTestDashboard(t)
	_, err := d.Series(context.Background(), "main", "monthly", 3)
	require.ErrorIs(t, err, gerr.ErrInvalidRequest)
}

func TestTiles(t *testing.T) {
	d, perf, _ := newTestDashboard(t)
	perf.EXPECT().QueryRange(mock.Anything, "main", "2026-10-01", "2026-10-15").
		Return([]entity.Record{
			rec("main", "2026-10-01", 5),
			rec("main", "2026-10-14", 40),
			rec("main", "2026-10-13", 30),
			rec("main", "2026-10-15", 1000),
		}, nil).Once()

	tiles, err := d.Tiles(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", tiles.Yesterday.Date)
	assert.True(t, tiles.Yesterday.Revenue.Equal(decimal.NewFromInt(40)))
	assert.True(t, tiles.DayBeforeYesterday.Revenue.Equal(decimal.NewFromInt(30)))
	assert.True(t, tiles.ThreeDaysAgo.Revenue.IsZero())
	assert.True(t, tiles.MonthToDate.Revenue.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, entity.DateRange{Start: "2026-10-01", End: "2026-10-14"}, tiles.MonthToDateRange)
}

func TestSample(t *testing.T) {
	d, perf, _ := newTestDashboard(t)
	perf.EXPECT().Sample(mock.Anything, "main", 10).Return([]entity.Record{rec("main", "2026-10-14", 1)}, nil).Once()

	records, err := d.Sample(context.Background(), "main", 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = d.Sample(context.Background(), "", 5)
	require.ErrorIs(t, err, gerr.ErrInvalidRequest)
}

func TestStatus(t *testing.T) {
	d, perf, status := newTestDashboard(t)
	perf.EXPECT().Stats(mock.Anything).Return([]entity.PerformanceStats{
		{Account: "main", Records: 12, FirstDate: sql.NullString{String: "2026-09-15", Valid: true}},
	}, nil).Once()
	status.EXPECT().GetImportStatuses(mock.Anything).Return([]entity.ImportStatus{
		{Account: "main", Status: entity.ImportStatusSuccess},
	}, nil).Once()

	st, err := d.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, st.Performance, 1)
	require.Len(t, st.Imports, 1)
	assert.EqualValues(t, 12, st.Performance[0].Records)
}
