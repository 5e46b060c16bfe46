package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jekabolt/sellerboard-kpi/internal/auth/jwt"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboard struct {
	lastAccount     string
	lastRange       entity.DateRange
	lastGranularity entity.KpiGranularity
	lastPoints      int
	err             error
}

func (f *fakeDashboard) Accounts() []string { return []string{"main", "second"} }

func (f *fakeDashboard) Summary(_ context.Context, account string, dr entity.DateRange) (entity.KpiSummary, error) {
	f.lastAccount, f.lastRange = account, dr
	if f.err != nil {
		return entity.KpiSummary{}, f.err
	}
	total := entity.KpiSet{Totals: entity.Totals{Revenue: decimal.NewFromInt(150)}}
	return entity.KpiSummary{
		Range:    entity.DateRange{Start: "2026-09-15", End: "2026-10-14"},
		Total:    total,
		Accounts: []entity.AccountKpi{{Account: "main", Kpi: total}},
	}, nil
}

func (f *fakeDashboard) Series(_ context.Context, account string, g entity.KpiGranularity, n int) ([]entity.KpiPoint, error) {
	f.lastAccount, f.lastGranularity, f.lastPoints = account, g, n
	return []entity.KpiPoint{{Date: "2026-10-14"}}, f.err
}

func (f *fakeDashboard) Tiles(_ context.Context, account string) (entity.RecentTiles, error) {
	f.lastAccount = account
	return entity.RecentTiles{Yesterday: entity.KpiPoint{Date: "2026-10-14"}}, f.err
}

func (f *fakeDashboard) Sample(_ context.Context, account string, limit int) ([]entity.Record, error) {
	f.lastAccount, f.lastPoints = account, limit
	return []entity.Record{{Account: account, Date: "2026-10-14", SalesOrganic: decimal.NewFromInt(3)}}, f.err
}

func (f *fakeDashboard) Status(context.Context) (entity.StoreStatus, error) {
	return entity.StoreStatus{Performance: []entity.PerformanceStats{{Account: "main", Records: 3}}}, f.err
}

type fakeImporter struct {
	summary entity.ImportSummary
	err     error
	account string
}

func (f *fakeImporter) Run(_ context.Context, account string) (entity.ImportSummary, error) {
	f.account = account
	return f.summary, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type testServer struct {
	srv       *Server
	auth      *jwt.Auth
	dashboard *fakeDashboard
	importer  *fakeImporter
}

func newTestServer(t *testing.T) *testServer {
	auth, err := jwt.New(&jwt.Config{JWTSecret: "secret", Password: "hunter2", CronSecret: "cron"})
	require.NoError(t, err)
	ts := &testServer{
		auth:      auth,
		dashboard: &fakeDashboard{},
		importer:  &fakeImporter{},
	}
	ts.srv = New(&Config{AllowedOrigins: []string{"*"}}, auth, ts.dashboard, ts.importer, fakePinger{})
	return ts
}

func (ts *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) authed(t *testing.T, method, target string) *http.Request {
	t.Helper()
	cookie, err := ts.auth.Login("hunter2")
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(cookie)
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	ts.srv.store = fakePinger{err: errors.New("down")}
	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := ts.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec = ts.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = ts.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, jwt.CookieName, cookies[0].Name)
	assert.Equal(t, true, decode(t, rec)["success"])
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/api/kpi/summary", "/api/kpi/series", "/api/kpi/tiles", "/api/records/sample", "/api/status", "/api/accounts"} {
		rec := ts.do(t, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/kpi/tiles", nil)
	req.AddCookie(&http.Cookie{Name: jwt.CookieName, Value: "authenticated"})
	rec := ts.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestKpiSummary(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, ts.authed(t, http.MethodGet, "/api/kpi/summary?account=main&start=2026-10-01&end=2026-10-07"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "main", ts.dashboard.lastAccount)
	assert.Equal(t, entity.DateRange{Start: "2026-10-01", End: "2026-10-07"}, ts.dashboard.lastRange)

	body := decode(t, rec)
	assert.Equal(t, 150.0, body["total"].(map[string]any)["revenue"])
}

func TestKpiSummaryValidation(t *testing.T) {
	ts := newTestServer(t)
	for _, target := range []string{
		"/api/kpi/summary?start=2026-10-01",
		"/api/kpi/summary?start=01.10.2026&end=2026-10-07",
		"/api/kpi/series?granularity=monthly",
		"/api/kpi/series?points=0x",
		"/api/kpi/series?points=1000",
		"/api/records/sample?account=main&limit=-1",
	} {
		rec := ts.do(t, ts.authed(t, http.MethodGet, target))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestKpiSummaryUnknownAccount(t *testing.T) {
	ts := newTestServer(t)
	ts.dashboard.err = gerr.ErrUnknownAccount
	rec := ts.do(t, ts.authed(t, http.MethodGet, "/api/kpi/summary?account=nope"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKpiSeries(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, ts.authed(t, http.MethodGet, "/api/kpi/series?granularity=weekly&points=12"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.KpiGranularityWeekly, ts.dashboard.lastGranularity)
	assert.Equal(t, 12, ts.dashboard.lastPoints)

	rec = ts.do(t, ts.authed(t, http.MethodGet, "/api/kpi/series"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.KpiGranularityDaily, ts.dashboard.lastGranularity)
	body := decode(t, rec)
	assert.Equal(t, "daily", body["granularity"])
	assert.Len(t, body["points"], 1)
}

func TestKpiTilesAndSample(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, ts.authed(t, http.MethodGet, "/api/kpi/tiles?account=main"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-10-14", decode(t, rec)["yesterday"].(map[string]any)["date"])

	rec = ts.do(t, ts.authed(t, http.MethodGet, "/api/records/sample?account=main&limit=5"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, ts.dashboard.lastPoints)
	body := decode(t, rec)
	assert.EqualValues(t, 1, body["count"])

	rec = ts.do(t, ts.authed(t, http.MethodGet, "/api/status"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCronImport(t *testing.T) {
	ts := newTestServer(t)
	ts.importer.summary = entity.ImportSummary{OK: true, RunID: "run", Accounts: []entity.AccountImport{{Account: "main"}}}

	rec := ts.do(t, httptest.NewRequest(http.MethodPost, "/api/cron/import", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/cron/import?account=main", nil)
	req.Header.Set(cronSecretHeader, "cron")
	rec = ts.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "main", ts.importer.account)
	body := decode(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Len(t, body["summary"], 1)

	req = httptest.NewRequest(http.MethodPost, "/api/cron/import", nil)
	req.Header.Set("Authorization", "Bearer cron")
	rec = ts.do(t, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCronImportFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.importer.summary = entity.ImportSummary{
		RunID:         "run",
		FailedAccount: "main",
		Accounts:      []entity.AccountImport{{Account: "main", Error: "boom"}},
	}
	ts.importer.err = errors.New("import main: boom")

	req := httptest.NewRequest(http.MethodPost, "/api/cron/import", nil)
	req.Header.Set(cronSecretHeader, "cron")
	rec := ts.do(t, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "main", body["failedAccount"])

	ts.importer.summary = entity.ImportSummary{RunID: "run"}
	ts.importer.err = gerr.ErrImportInProgress
	rec = ts.do(t, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
