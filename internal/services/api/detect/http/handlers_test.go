package http

import (
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "watchdog/internal/platform/net/http"
	"watchdog/internal/services/detect/domain"
	"watchdog/internal/services/detect/service"
)

func newTestRouter(t *testing.T) stdhttp.Handler {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), Deps{
		Runner:   service.New(),
		Defaults: domain.Defaults(),
	})
	return m
}

const sampleCSV = "date,service,cost\n" +
	"2026-01-01,AmazonEC2,100\n" +
	"2026-01-02,AmazonEC2,102\n" +
	"2026-01-03,AmazonEC2,101\n"

func TestRunEndpoint(t *testing.T) {
	h := newTestRouter(t)

	body, err := json.Marshal(map[string]any{"csv": sampleCSV})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/run", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		StatusCode int           `json:"status_code"`
		Data       domain.Result `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.SchemaVersion != domain.SchemaVersion {
		t.Fatalf("expected schema version %q, got %q", domain.SchemaVersion, env.Data.SchemaVersion)
	}
	if env.Data.Anomalies == nil {
		t.Fatalf("anomalies must marshal as an array, not null")
	}
}

func TestRunEndpointRejectsMissingCSV(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(stdhttp.MethodPost, "/run", strings.NewReader(`{"threshold": 2.0}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("expected 400 for missing csv, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRunEndpointRejectsBadCSV(t *testing.T) {
	h := newTestRouter(t)

	body, err := json.Marshal(map[string]any{"csv": "date,service,cost\nnot-a-date,AmazonEC2,1\n"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/run", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("expected 400 for bad csv, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTrendsEndpoint(t *testing.T) {
	h := newTestRouter(t)

	var b strings.Builder
	b.WriteString("date,service,cost\n")
	for day := 1; day <= 14; day++ {
		fmt.Fprintf(&b, "2026-01-%02d,AmazonEC2,100\n", day)
	}

	body, err := json.Marshal(map[string]any{"csv": b.String()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/trends", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "AmazonEC2") {
		t.Fatalf("expected a trend summary in: %s", rec.Body.String())
	}
}
