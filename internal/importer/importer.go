package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/sellerboard-kpi/internal/civil"
	"github.com/jekabolt/sellerboard-kpi/internal/dependency"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

// Config holds configuration for the report import.
type Config struct {
	Accounts       []entity.Account `mapstructure:"accounts"`
	WorkerInterval time.Duration    `mapstructure:"worker_interval"` // 0 disables the scheduled run
	WindowDays     int              `mapstructure:"window_days"`
	ReplaceDays    int              `mapstructure:"replace_days"`
	BatchSize      int              `mapstructure:"batch_size"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WindowDays:  30,
		ReplaceDays: 7,
		BatchSize:   500,
	}
}

// Fetcher downloads account reports.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	CheckReachable(ctx context.Context, url string) []string
}

// Invalidator is told when stored records have changed.
type Invalidator interface {
	Invalidate()
}

// Importer replaces the most recent days of every account with the content
// of its current Sellerboard report.
type Importer struct {
	repo        dependency.Repository
	fetcher     Fetcher
	invalidator Invalidator
	c           *Config
	now         func() time.Time
	running     sync.Mutex
	ctx         context.Context
	stop        context.CancelFunc
}

// New creates a new importer. invalidator may be nil.
func New(c *Config, repo dependency.Repository, fetcher Fetcher, invalidator Invalidator) *Importer {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WindowDays == 0 {
		c.WindowDays = 30
	}
	if c.ReplaceDays == 0 {
		c.ReplaceDays = 7
	}
	if c.BatchSize == 0 {
		c.BatchSize = 500
	}
	return &Importer{
		repo:        repo,
		fetcher:     fetcher,
		invalidator: invalidator,
		c:           c,
		now:         time.Now,
	}
}

// Accounts returns the configured account names.
func (im *Importer) Accounts() []string {
	names := make([]string, 0, len(im.c.Accounts))
	for _, a := range im.c.Accounts {
		names = append(names, a.Name)
	}
	return names
}

// Run imports every configured account, or only the named one, using the
// current Europe/Berlin date.
func (im *Importer) Run(ctx context.Context, account string) (entity.ImportSummary, error) {
	return im.RunAt(ctx, civil.Today(im.now()), account)
}

// Start starts the scheduled import. It is a no-op when no interval is
// configured.
func (im *Importer) Start(ctx context.Context) error {
	if im.c.WorkerInterval <= 0 {
		slog.Default().InfoContext(ctx, "scheduled import disabled")
		return nil
	}
	if im.ctx != nil && im.stop != nil {
		return fmt.Errorf("import worker already started")
	}
	im.ctx, im.stop = context.WithCancel(ctx)
	go im.worker(im.ctx)
	return nil
}

// Stop stops the scheduled import.
func (im *Importer) Stop() error {
	if im.stop == nil {
		return fmt.Errorf("import worker already stopped or not started")
	}
	im.stop()
	im.stop = nil
	return nil
}

func (im *Importer) worker(ctx context.Context) {
	ticker := time.NewTicker(im.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			summary, err := im.Run(ctx, "")
			if err != nil {
				slog.Default().ErrorContext(ctx, "scheduled import failed",
					slog.String("err", err.Error()),
					slog.String("run_id", summary.RunID),
					slog.String("failed_account", summary.FailedAccount),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}
