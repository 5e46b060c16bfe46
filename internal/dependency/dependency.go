package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --name Repository --name Performance --name ImportStatus --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Performance interface {
		// UpsertRecords writes records in batches of batchSize, replacing rows
		// with the same (account, date, marketplace, asin, sku).
		UpsertRecords(ctx context.Context, records []entity.Record, batchSize int) (int64, error)
		// DeleteRange removes an account's rows dated within [start, end].
		DeleteRange(ctx context.Context, account string, start, end string) (int64, error)
		// QueryRange returns rows dated within [start, end] ordered by date.
		// An empty account matches every account.
		QueryRange(ctx context.Context, account string, start, end string) ([]entity.Record, error)
		// Sample returns the newest rows of an account.
		Sample(ctx context.Context, account string, limit int) ([]entity.Record, error)
		// Stats returns row counts and date bounds per account.
		Stats(ctx context.Context) ([]entity.PerformanceStats, error)
	}

	ImportStatus interface {
		UpdateImportStatus(ctx context.Context, st *entity.ImportStatus) error
		GetImportStatuses(ctx context.Context) ([]entity.ImportStatus, error)
	}

	Repository interface {
		Performance() Performance
		ImportStatus() ImportStatus
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		Ping(ctx context.Context) error
		Now() time.Time
		Close()
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
