package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/graphreduce/graphreduce/pkg/cache"
	"github.com/graphreduce/graphreduce/pkg/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return New(cache.NewNullCache(), st, log.New(io.Discard))
}

func TestHandleReduce(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"graph": {
			"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
			"edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "c"}]
		},
		"outputs": ["c"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/reduce", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp reduceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ReducedNodeCount != 2 {
		t.Errorf("ReducedNodeCount = %d, want 2 (interior node elided)", resp.ReducedNodeCount)
	}
	if resp.RunID == "" {
		t.Error("expected non-empty RunID")
	}
}

func TestHandleReduceUnknownOutput(t *testing.T) {
	s := newTestServer(t)

	body := `{"graph": {"nodes": [{"id": "a"}], "edges": []}, "outputs": ["missing"]}`
	req := httptest.NewRequest(http.MethodPost, "/reduce", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGetRunRoundTrip(t *testing.T) {
	s := newTestServer(t)

	body := `{"graph": {"nodes": [{"id": "a"}], "edges": []}, "outputs": ["a"]}`
	req := httptest.NewRequest(http.MethodPost, "/reduce", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var resp reduceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/runs/"+resp.RunID, nil)
	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var run store.Run
	if err := json.Unmarshal(rec.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.ID != resp.RunID {
		t.Errorf("run.ID = %q, want %q", run.ID, resp.RunID)
	}
}

func TestHandleGetRunNotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs/nonexistent", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
