package dashboard

import (
	"context"
	"fmt"

	"github.com/jekabolt/sellerboard-kpi/internal/civil"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
	"github.com/jekabolt/sellerboard-kpi/internal/kpi"
	"golang.org/x/sync/errgroup"
)

// Summary aggregates the records of [start, end] with the account,
// marketplace and product breakdown. Without a range it covers the
// configured number of days up to yesterday.
func (d *Dashboard) Summary(ctx context.Context, account string, dr entity.DateRange) (entity.KpiSummary, error) {
	if err := d.checkAccount(account); err != nil {
		return entity.KpiSummary{}, err
	}
	if dr.Start == "" && dr.End == "" {
		start, end, err := civil.InclusiveRange(d.Today(), d.c.SummaryDays)
		if err != nil {
			return entity.KpiSummary{}, err
		}
		dr = entity.DateRange{Start: start, End: end}
	}
	if !civil.Valid(dr.Start) || !civil.Valid(dr.End) || dr.Start > dr.End {
		return entity.KpiSummary{}, fmt.Errorf("%w: date range %s..%s", gerr.ErrInvalidRequest, dr.Start, dr.End)
	}

	records, err := d.load(ctx, account, dr.Start, dr.End)
	if err != nil {
		return entity.KpiSummary{}, err
	}
	return entity.KpiSummary{
		Range:    dr,
		Total:    kpi.Aggregate(records),
		Accounts: kpi.GroupByAccount(records),
	}, nil
}

// Series returns a dense series of n points. Daily series end yesterday
// since today's data is still incomplete; weekly series end with the current
// week. n falls back to 30 days or 12 weeks.
func (d *Dashboard) Series(ctx context.Context, account string, g entity.KpiGranularity, n int) ([]entity.KpiPoint, error) {
	if err := d.checkAccount(account); err != nil {
		return nil, err
	}
	today := d.Today()

	switch g {
	case entity.KpiGranularityDaily, "":
		if n <= 0 {
			n = kpi.DefaultDays
		}
		records, err := d.load(ctx, account, civil.AddDays(today, -n), today)
		if err != nil {
			return nil, err
		}
		return kpi.WithoutDate(kpi.BuildDailySeries(records, n+1, today), today), nil
	case entity.KpiGranularityWeekly:
		if n <= 0 {
			n = kpi.DefaultWeeks
		}
		records, err := d.load(ctx, account, civil.AddDays(civil.MondayOf(today), -7*(n-1)), today)
		if err != nil {
			return nil, err
		}
		return kpi.BuildWeeklySeries(records, n, today), nil
	default:
		return nil, fmt.Errorf("%w: granularity %q", gerr.ErrInvalidRequest, g)
	}
}

// Tiles returns the headline figures for the last three days and the month
// to date.
func (d *Dashboard) Tiles(ctx context.Context, account string) (entity.RecentTiles, error) {
	if err := d.checkAccount(account); err != nil {
		return entity.RecentTiles{}, err
	}
	today := d.Today()
	start := min(civil.FirstOfMonth(today), civil.AddDays(today, -3))

	records, err := d.load(ctx, account, start, today)
	if err != nil {
		return entity.RecentTiles{}, err
	}
	return kpi.Tiles(records, today), nil
}

// Sample returns the newest stored rows of an account.
func (d *Dashboard) Sample(ctx context.Context, account string, limit int) ([]entity.Record, error) {
	if account == "" {
		return nil, fmt.Errorf("%w: account is required", gerr.ErrInvalidRequest)
	}
	if err := d.checkAccount(account); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = d.c.SampleLimit
	}
	return d.repo.Performance().Sample(ctx, account, limit)
}

// Status reports what the store holds per account and the last import of
// every account.
func (d *Dashboard) Status(ctx context.Context) (entity.StoreStatus, error) {
	var st entity.StoreStatus
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := d.repo.Performance().Stats(ctx)
		if err != nil {
			return err
		}
		st.Performance = stats
		return nil
	})
	g.Go(func() error {
		imports, err := d.repo.ImportStatus().GetImportStatuses(ctx)
		if err != nil {
			return err
		}
		st.Imports = imports
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.StoreStatus{}, err
	}
	return st, nil
}
