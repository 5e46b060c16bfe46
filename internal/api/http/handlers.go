package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/sellerboard-kpi/internal/auth/jwt"
	"github.com/jekabolt/sellerboard-kpi/internal/dto"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

const cronSecretHeader = "X-Cron-Secret"

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		render.Render(w, r, newErrResponse(err, http.StatusServiceUnavailable))
		return
	}
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	req := &LoginRequest{}
	if err := render.Bind(r, req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	cookie, err := s.auth.Login(req.Password)
	if err != nil {
		slog.Default().WarnContext(r.Context(), "login rejected", slog.String("err", err.Error()))
		render.Render(w, r, ErrFromError(err))
		return
	}
	http.SetCookie(w, cookie)
	render.JSON(w, r, map[string]bool{"success": true})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	render.JSON(w, r, map[string]bool{"success": true})
}

// authenticator rejects requests without a valid dashboard session token.
func authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil || token.Subject() != jwt.DashboardSubject {
			render.Render(w, r, ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cronOnly accepts the cron secret in X-Cron-Secret or as a bearer token.
func (s *Server) cronOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := r.Header.Get(cronSecretHeader)
		if secret == "" {
			secret = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if !s.auth.CronAllowed(secret) {
			render.Render(w, r, ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) cronImport(w http.ResponseWriter, r *http.Request) {
	summary, err := s.importer.Run(r.Context(), r.URL.Query().Get("account"))
	if err != nil {
		if len(summary.Accounts) == 0 {
			render.Render(w, r, ErrFromError(err))
			return
		}
		render.Status(r, http.StatusInternalServerError)
	}
	render.JSON(w, r, summary)
}

func (s *Server) accounts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string][]string{"accounts": s.dashboard.Accounts()})
}

func (s *Server) kpiSummary(w http.ResponseWriter, r *http.Request) {
	q, err := parseKpiQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	summary, err := s.dashboard.Summary(r.Context(), q.Account, entity.DateRange{Start: q.Start, End: q.End})
	if err != nil {
		render.Render(w, r, ErrFromError(err))
		return
	}
	render.JSON(w, r, dto.ConvertKpiSummary(summary))
}

func (s *Server) kpiSeries(w http.ResponseWriter, r *http.Request) {
	q, err := parseKpiQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	g := entity.KpiGranularity(q.Granularity)
	if g == "" {
		g = entity.KpiGranularityDaily
	}
	points, err := s.dashboard.Series(r.Context(), q.Account, g, q.Points)
	if err != nil {
		render.Render(w, r, ErrFromError(err))
		return
	}
	render.JSON(w, r, dto.KpiSeries{
		Account:     q.Account,
		Granularity: string(g),
		Points:      dto.ConvertKpiPoints(points),
	})
}

func (s *Server) kpiTiles(w http.ResponseWriter, r *http.Request) {
	q, err := parseKpiQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	tiles, err := s.dashboard.Tiles(r.Context(), q.Account)
	if err != nil {
		render.Render(w, r, ErrFromError(err))
		return
	}
	render.JSON(w, r, dto.ConvertRecentTiles(tiles))
}

func (s *Server) recordsSample(w http.ResponseWriter, r *http.Request) {
	q, err := parseKpiQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	records, err := s.dashboard.Sample(r.Context(), q.Account, q.Limit)
	if err != nil {
		render.Render(w, r, ErrFromError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"account": q.Account,
		"count":   len(records),
		"sample":  dto.ConvertRecords(records),
	})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	st, err := s.dashboard.Status(r.Context())
	if err != nil {
		render.Render(w, r, ErrFromError(err))
		return
	}
	render.JSON(w, r, dto.ConvertStoreStatus(st))
}
