package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/sellerboard-kpi/internal/auth/jwt"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/jekabolt/sellerboard-kpi/log"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LoginRateLimit int           `mapstructure:"login_rate_limit"` // login attempts per minute and IP
}

// Dashboard serves the KPI views.
type Dashboard interface {
	Accounts() []string
	Summary(ctx context.Context, account string, dr entity.DateRange) (entity.KpiSummary, error)
	Series(ctx context.Context, account string, g entity.KpiGranularity, n int) ([]entity.KpiPoint, error)
	Tiles(ctx context.Context, account string) (entity.RecentTiles, error)
	Sample(ctx context.Context, account string, limit int) ([]entity.Record, error)
	Status(ctx context.Context) (entity.StoreStatus, error)
}

// Importer runs report imports on demand.
type Importer interface {
	Run(ctx context.Context, account string) (entity.ImportSummary, error)
}

// Pinger checks the store connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs        *http.Server
	c         *Config
	auth      *jwt.Auth
	dashboard Dashboard
	importer  Importer
	store     Pinger
	done      chan struct{}
}

// New creates a new server
func New(c *Config, auth *jwt.Auth, dashboard Dashboard, importer Importer, store Pinger) *Server {
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 5 * time.Minute
	}
	if c.LoginRateLimit == 0 {
		c.LoginRateLimit = 10
	}
	return &Server{
		c:         c,
		auth:      auth,
		dashboard: dashboard,
		importer:  importer,
		store:     store,
		done:      make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.c.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", cronSecretHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.c.RequestTimeout))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(httprate.LimitByIP(s.c.LoginRateLimit, time.Minute)).Post("/login", s.login)
			r.Post("/logout", s.logout)
		})

		r.With(s.cronOnly).Post("/cron/import", s.cronImport)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(s.auth.JWTAuth(), jwt.TokenFromCookie))
			r.Use(authenticator)

			r.Get("/accounts", s.accounts)
			r.Get("/kpi/summary", s.kpiSummary)
			r.Get("/kpi/series", s.kpiSeries)
			r.Get("/kpi/tiles", s.kpiTiles)
			r.Get("/records/sample", s.recordsSample)
			r.Get("/status", s.status)
		})
	})

	return r
}

// Start starts the http server and closes Done when it exits.
func (s *Server) Start(ctx context.Context) error {
	s.hs = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", s.c.Address, s.c.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "http server listening", slog.String("addr", s.hs.Addr))
		if err := s.hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Default().ErrorContext(ctx, "http server failed", slog.String("err", err.Error()))
		}
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
