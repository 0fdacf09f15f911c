package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalbodeule/hopgate/internal/audit"
	"github.com/dalbodeule/hopgate/internal/logging"
)

type fakeReader struct {
	records map[string]audit.Record
}

func (f *fakeReader) List(ctx context.Context, limit int) ([]audit.Record, error) {
	out := make([]audit.Record, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReader) Get(ctx context.Context, id string) (audit.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return audit.Record{}, audit.ErrNotFound
	}
	return r, nil
}

func newTestHandler() *Handler {
	reader := &fakeReader{records: map[string]audit.Record{
		"abc": {ID: "abc", PublicA: "1.2.3.4:9001", PrivateA: "10.0.0.1:9001", PublicB: "5.6.7.8:9002", PrivateB: "10.0.0.2:9002", CompletedAt: time.Now()},
	}}
	return NewHandler(logging.NewStdJSONLogger("test"), "secret", reader)
}

func TestHandlerRejectsMissingAuth(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/pairings", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestHandlerListsWithValidAuth(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/pairings", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body listResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || len(body.Pairings) != 1 {
		t.Fatalf("body = %+v, want one pairing", body)
	}
}

func TestHandlerGetMissingReturns404(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/pairings/does-not-exist", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerHealthIsUnauthenticated(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
