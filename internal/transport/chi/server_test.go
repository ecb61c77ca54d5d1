package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/repository/memstore"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/tool"
	healthuc "github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/health"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/memnote"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/memsearch"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	businessRoot := filepath.Join(t.TempDir(), "memories")
	store := memstore.New(memstore.Config{
		BusinessRoot: businessRoot,
		LegacyRoot:   filepath.Join(t.TempDir(), "crowe-memories"),
	})
	registry := tool.DefaultRegistry(memsearch.New(store), memnote.New(store))
	health := healthuc.New(store, []memory.Collection{memory.Business, memory.Legacy})
	return NewServer(registry, health, zap.NewNop()), businessRoot
}

func TestListTools(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tools", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Tools []tool.Declaration `json:"tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Tools) != 6 {
		t.Errorf("expected 6 tools, got %d", len(body.Tools))
	}
}

func TestCallTool_Search(t *testing.T) {
	srv, businessRoot := newTestServer(t)
	if err := os.MkdirAll(businessRoot, 0o755); err != nil {
		t.Fatal(err)
	}
	err := os.WriteFile(filepath.Join(businessRoot, "maple-st.md"),
		[]byte("Seller finance on Maple St closed at six percent."), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/search_memory",
		strings.NewReader(`{"searchTerm": "maple"}`))
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Tool string `json:"tool"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Tool != "search_memory" {
		t.Errorf("unexpected tool %q", body.Tool)
	}
	if !strings.Contains(body.Text, "Found 1 match(es)") {
		t.Errorf("unexpected report: %q", body.Text)
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/warp_drive", strings.NewReader(`{}`))
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown_tool") {
		t.Errorf("expected unknown_tool code: %s", rec.Body.String())
	}
}

func TestCallTool_ValidationFailure(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/search_memory", strings.NewReader(`{}`))
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "validation_failed") {
		t.Errorf("expected validation_failed code: %s", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected ok, got %q", body.Status)
	}
}

func TestHealthz_Degraded(t *testing.T) {
	// A root that exists but is a regular file is unreadable as a directory.
	dir := t.TempDir()
	badRoot := filepath.Join(dir, "memories")
	if err := os.WriteFile(badRoot, []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := memstore.New(memstore.Config{
		BusinessRoot: badRoot,
		LegacyRoot:   filepath.Join(dir, "crowe-memories"),
	})
	registry := tool.DefaultRegistry(memsearch.New(store), memnote.New(store))
	health := healthuc.New(store, []memory.Collection{memory.Business, memory.Legacy})
	srv := NewServer(registry, health, zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}
}
