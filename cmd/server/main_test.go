package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chandas "github.com/cours-de-sanskrit/chandas"
)

func doRequest(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	newMux(chandas.New()).ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyzePost(t *testing.T) {
	body := `{"text":"असतो मा सद्गमय । तमसो मा ज्योतिर्गमय । मृत्योर् मा अमृतं गमय ॥","script":"auto"}`
	rec := doRequest(t, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var res analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if res.Script != "devanagari" {
		t.Errorf("script = %q, want %q", res.Script, "devanagari")
	}
	if res.Guess.Name != "Gayatri" || res.Guess.MatchType != "tolerant" {
		t.Errorf("guess = %s/%s, want Gayatri/tolerant", res.Guess.Name, res.Guess.MatchType)
	}
	if len(res.Padas) != 3 {
		t.Errorf("padas = %d, want 3", len(res.Padas))
	}
}

func TestHandleAnalyzeGet(t *testing.T) {
	rec := doRequest(t, httptest.NewRequest(http.MethodGet,
		"/api/analyze?text=ka+ka+ka+ka+ka+ka+ka+ka&script=latin", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var res analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if res.Script != "latin" {
		t.Errorf("script = %q, want %q", res.Script, "latin")
	}
	if res.InputSegments != 1 {
		t.Errorf("input_segments = %d, want 1", res.InputSegments)
	}
}

func TestHandleAnalyzeEmptyText(t *testing.T) {
	// The engine is total: an empty verse is a valid request and yields a
	// low-confidence closest match, not an error.
	rec := doRequest(t, httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader(`{"text":""}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var res analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if res.Guess.MatchType != "closest" {
		t.Errorf("match_type = %q, want %q", res.Guess.MatchType, "closest")
	}
	if res.Guess.Confidence != 0.1 {
		t.Errorf("confidence = %v, want 0.1", res.Guess.Confidence)
	}
}

func TestHandleAnalyzeBadJSON(t *testing.T) {
	rec := doRequest(t, httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader("not json")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleAnalyzeMethodNotAllowed(t *testing.T) {
	rec := doRequest(t, httptest.NewRequest(http.MethodDelete, "/api/analyze", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleMeters(t *testing.T) {
	rec := doRequest(t, httptest.NewRequest(http.MethodGet, "/api/meters", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res metersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(res.Meters) != 7 {
		t.Errorf("meters = %d, want 7", len(res.Meters))
	}
	if res.Meters[0].Name != "Gayatri" {
		t.Errorf("meters[0] = %q, want Gayatri", res.Meters[0].Name)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.ForceConfidence {
		t.Error("ForceConfidence defaults to true, want false")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("CHANDAS_ADDR", ":9999")
	t.Setenv("CHANDAS_FORCE_CONFIDENCE", "true")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9999")
	}
	if !cfg.ForceConfidence {
		t.Error("ForceConfidence = false, want true")
	}
}
