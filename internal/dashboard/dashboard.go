package dashboard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jekabolt/sellerboard-kpi/internal/civil"
	"github.com/jekabolt/sellerboard-kpi/internal/dependency"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for the dashboard views.
type Config struct {
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	SummaryDays int           `mapstructure:"summary_days"`
	SampleLimit int           `mapstructure:"sample_limit"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		CacheTTL:    15 * time.Minute,
		SummaryDays: 30,
		SampleLimit: 10,
	}
}

// Dashboard serves KPI views over stored records. Loaded records are cached
// per account and date range until the TTL passes or Invalidate is called.
type Dashboard struct {
	repo     dependency.Repository
	accounts []string
	cache    *cache.Cache
	c        *Config
	now      func() time.Time
}

// New creates a dashboard over the given accounts.
func New(c *Config, repo dependency.Repository, accounts []string) *Dashboard {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 15 * time.Minute
	}
	if c.SummaryDays == 0 {
		c.SummaryDays = 30
	}
	if c.SampleLimit == 0 {
		c.SampleLimit = 10
	}
	return &Dashboard{
		repo:     repo,
		accounts: accounts,
		cache:    cache.New(c.CacheTTL, 2*c.CacheTTL),
		c:        c,
		now:      time.Now,
	}
}

// Today returns the current Europe/Berlin date.
func (d *Dashboard) Today() string {
	return civil.Today(d.now())
}

// Accounts returns the account names the dashboard covers.
func (d *Dashboard) Accounts() []string {
	return d.accounts
}

// Invalidate drops every cached record set.
func (d *Dashboard) Invalidate() {
	d.cache.Flush()
}

func (d *Dashboard) checkAccount(account string) error {
	if account == "" || slices.Contains(d.accounts, account) {
		return nil
	}
	return fmt.Errorf("%w: %s", gerr.ErrUnknownAccount, account)
}

// load returns the records of account dated within [start, end]. An empty
// account loads every account, one query per account in parallel, and
// concatenates them in account order.
func (d *Dashboard) load(ctx context.Context, account, start, end string) ([]entity.Record, error) {
	key := account + "|" + start + "|" + end
	if cached, found := d.cache.Get(key); found {
		return cached.([]entity.Record), nil
	}

	names := []string{account}
	if account == "" {
		names = d.accounts
	}

	results := make([][]entity.Record, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			records, err := d.repo.Performance().QueryRange(ctx, name, start, end)
			if err != nil {
				return fmt.Errorf("load records of %s: %w", name, err)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []entity.Record
	for _, rs := range results {
		records = append(records, rs...)
	}
	d.cache.SetDefault(key, records)
	return records, nil
}
