package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/inventory-management/kafka"
	"github.com/tair/inventory-management/pkg/config"
	"github.com/tair/inventory-management/pkg/database/dbtest"
)

func newTestApp(t *testing.T) (*App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := dbtest.New(t)

	cfg := config.Default()
	cfg.Server.StaticDir = t.TempDir()

	app, err := InitializeApp(db, cfg, kafka.NopPublisher{}, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	return app, mock
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, _ := io.ReadAll(rec.Body)
	return rec, string(body)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	rec, body := get(t, app.Handler(), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("unexpected body %s", body)
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	app, _ := newTestApp(t)

	sqlDB, err := app.db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.Close()

	rec, body := get(t, app.Handler(), "/health")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(body, "Database unavailable") {
		t.Errorf("unexpected body %s", body)
	}
}

func TestRoutesAreMountedAndMeasured(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "Categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}).AddRow(1, "Tools"))

	rec, body := get(t, app.Handler(), "/categories")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, body)
	}
	if !strings.Contains(body, `"category_name":"Tools"`) {
		t.Errorf("unexpected body %s", body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected request id header")
	}
	dbtest.Verify(t, mock)

	rec, body = get(t, app.Handler(), "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(body, `inventory_api_requests_total{endpoint="list",method="GET",resource="category",status="200"} 1`) {
		t.Errorf("expected request counter in metrics output:\n%s", body)
	}
}

func TestStaticFiles(t *testing.T) {
	app, _ := newTestApp(t)

	index := filepath.Join(app.cfg.Server.StaticDir, "index.html")
	if err := os.WriteFile(index, []byte("<h1>inventory</h1>"), 0o600); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	rec, body := get(t, app.Handler(), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(body, "<h1>inventory</h1>") {
		t.Errorf("unexpected body %s", body)
	}

	rec, _ = get(t, app.Handler(), "/missing.css")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing file, got %d", rec.Code)
	}
}

func TestSwaggerDocument(t *testing.T) {
	app, _ := newTestApp(t)

	rec, body := get(t, app.Handler(), "/swagger/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, path := range []string{"/categories", "/inventory-logs", "/employees/login"} {
		if !strings.Contains(body, `"`+path+`"`) {
			t.Errorf("expected %s in swagger document", path)
		}
	}
}

func TestPreflightAllowed(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/suppliers", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("expected CORS allow origin header, got %v", rec.Header())
	}
}

func TestProvideMiddlewareConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tracing.Enabled = true

	mw := ProvideMiddlewareConfig(cfg)
	if !mw.EnableTracing {
		t.Errorf("expected tracing enabled")
	}
	if mw.OperationName != "inventory-api-http-request" {
		t.Errorf("unexpected operation name %s", mw.OperationName)
	}
}

func TestProvidePasswordSchemeRejectsUnknown(t *testing.T) {
	cfg := config.Default()
	cfg.Auth.PasswordScheme = "md5"
	if _, err := ProvidePasswordScheme(cfg); err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}
