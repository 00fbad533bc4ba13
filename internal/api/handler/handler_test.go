package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeCronJob struct {
	started bool
	calls   int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		wantStatus   string
		wantDatabase string
	}{
		{name: "Banco disponível", db: fakePinger{}, wantStatus: "ok", wantDatabase: "ok"},
		{name: "Banco fora do ar - degradado", db: fakePinger{err: errors.New("down")}, wantStatus: "degraded", wantDatabase: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, tt.wantDatabase, body["database"])
		})
	}
}

func TestCronJobs(t *testing.T) {
	job := &fakeCronJob{started: true}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{BackfillSyncService: job})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/backfill/run", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.calls)
	assert.JSONEq(t, `{"message":"Cron job iniciada com sucesso","type":"backfill","started":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/meta/run", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"backfill":{"sync_enabled":true}}`, rec.Body.String())

	noJobs := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))
	rec = httptest.NewRecorder()
	noJobs.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/backfill/run", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Serviço de backfill não disponível","code":"SRV_003"}`, rec.Body.String())
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>dashboard</h1>"), 0o644))

	rt := router.New(
		router.WithRoutes(Healthcheck(fakePinger{})...),
		router.WithNotFound(StaticFiles(dir)),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Rota não encontrada","code":"VAL_004"}`, rec.Body.String())
}

func TestRouterInstrumentation(t *testing.T) {
	var routes []string
	rt := router.New(
		router.WithInstrumentation(func(route string, next http.Handler) http.Handler {
			routes = append(routes, route)
			return next
		}),
		router.WithRoutes(CronJobs(CronJobServices{})...),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, []string{"/v1/cron/:type/run", "/v1/cron/status"}, routes)
}
