package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nomina/internal/domain/payroll"
	"nomina/internal/platform/config"
	"nomina/internal/platform/metrics"
)

func newTestConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		PayslipDir:     t.TempDir(),
		MaxBodyBytes:   1 << 20,
		MetricsEnabled: true,
	}
}

func TestHealthz(t *testing.T) {
	cfg := newTestConfig(t)
	router := NewRouter(cfg, payroll.NewService(cfg.PayslipDir), metrics.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected ok, got %s", rec.Body.String())
	}
}

func TestMetricszReportsCounters(t *testing.T) {
	cfg := newTestConfig(t)
	router := NewRouter(cfg, payroll.NewService(cfg.PayslipDir), metrics.New())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metricsz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "requestsTotal") {
		t.Fatalf("expected counters in body: %s", rec.Body.String())
	}
}

func TestAPIRequiresTokenWhenSecretConfigured(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.JWTSecret = "secret"
	router := NewRouter(cfg, payroll.NewService(cfg.PayslipDir), metrics.New())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/calculate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAPICalculateThroughFullStack(t *testing.T) {
	cfg := newTestConfig(t)
	router := NewRouter(cfg, payroll.NewService(cfg.PayslipDir), metrics.New())

	body := `{
		"scheme": "temporary",
		"id": "E-301",
		"name": "Rita Salas",
		"hireDate": "2023-01-01",
		"contractEnd": "2027-01-01",
		"asOf": "2024-06-30",
		"monthlySalary": 2000000
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"net":1920000`) {
		t.Fatalf("expected net 1920000 in body: %s", rec.Body.String())
	}
}
