package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/sellerboard-kpi/config"
	httpapi "github.com/jekabolt/sellerboard-kpi/internal/api/http"
	"github.com/jekabolt/sellerboard-kpi/internal/auth/jwt"
	"github.com/jekabolt/sellerboard-kpi/internal/dashboard"
	"github.com/jekabolt/sellerboard-kpi/internal/dependency"
	"github.com/jekabolt/sellerboard-kpi/internal/importer"
	"github.com/jekabolt/sellerboard-kpi/internal/sellerboard"
	"github.com/jekabolt/sellerboard-kpi/internal/store"
)

// App is the main application
type App struct {
	hs       *httpapi.Server
	db       dependency.Repository
	importer *importer.Importer
	c        *config.Config
	done     chan struct{}
	doneOnce sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// NewImporter wires an importer over repo. It is shared by the server and
// the one-shot import command.
func NewImporter(c *config.Config, repo dependency.Repository, invalidator importer.Invalidator) *importer.Importer {
	client := sellerboard.NewClient(&c.Sellerboard, nil)
	return importer.New(&c.Importer, repo, client, invalidator)
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting sellerboard kpi service",
		slog.Int("accounts", len(a.c.Importer.Accounts)),
	)

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}
	a.db = db

	auth, err := jwt.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create auth", slog.String("err", err.Error()))
		return err
	}

	dash := dashboard.New(&a.c.Dashboard, a.db, accountNames(a.c))
	a.importer = NewImporter(a.c, a.db, dash)
	if err := a.importer.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start import worker", slog.String("err", err.Error()))
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP, auth, dash, a.importer, a.db)
	if err := a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeDone()
	}()
	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.importer != nil {
		_ = a.importer.Stop()
	}
	if a.hs != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		if err := a.hs.Stop(shutdownCtx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.closeDone()
}

func (a *App) closeDone() {
	a.doneOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}

func accountNames(c *config.Config) []string {
	names := make([]string, 0, len(c.Importer.Accounts))
	for _, acc := range c.Importer.Accounts {
		names = append(names, acc.Name)
	}
	return names
}
