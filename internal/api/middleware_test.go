package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-planner-service/internal/platform/obs"
)

func TestRequestIDMiddlewareAssignsID(t *testing.T) {
	var seen string
	h := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = obs.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatal("handler context carries no request ID")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("X-Request-ID header = %q, context carries %q", got, seen)
	}
}

func TestRequestIDMiddlewareHonorsCallerID(t *testing.T) {
	var seen string
	h := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = obs.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "caller-supplied" {
		t.Errorf("context request ID = %q, want caller-supplied", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("X-Request-ID header = %q, want caller-supplied", got)
	}
}

func TestStatusWriterRecordsImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec}

	if _, err := sw.Write([]byte("ok")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.status != http.StatusOK {
		t.Errorf("status = %d, want %d", sw.status, http.StatusOK)
	}
	if sw.bytes != 2 {
		t.Errorf("bytes = %d, want 2", sw.bytes)
	}
}
