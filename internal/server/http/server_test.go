package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cfgpkg "github.com/rzbill/snowid/internal/config"
	"github.com/rzbill/snowid/internal/runtime"
	idsvc "github.com/rzbill/snowid/internal/services/ids"
	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
)

func newServerForTest(t *testing.T, cfg cfgpkg.Config) *Server {
	t.Helper()
	rt, err := runtime.Open(runtime.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever, Config: cfg})
	if err != nil {
		t.Fatalf("rt open: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	return New(rt)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	s := newServerForTest(t, cfgpkg.Default())
	w := do(t, s, http.MethodGet, "/v1/healthz", "")
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestGenerateHandler(t *testing.T) {
	s := newServerForTest(t, cfgpkg.Default())
	w := do(t, s, http.MethodPost, "/v1/ids/generate", `{"count":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", w.Code, w.Body.String())
	}
	var resp generateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(resp.Ids))
	}
	for _, g := range resp.Ids {
		if g.ID == 0 || g.Base62 == "" {
			t.Fatalf("incomplete id %+v", g)
		}
	}
}

func TestGenerateHandlerEmptyBodyDefaultsToOne(t *testing.T) {
	s := newServerForTest(t, cfgpkg.Default())
	w := do(t, s, http.MethodPost, "/v1/ids/generate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var resp generateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Ids) != 1 {
		t.Fatalf("expected 1 id, got %d", len(resp.Ids))
	}
}

func TestGenerateHandlerCap(t *testing.T) {
	cfg := cfgpkg.Default()
	cfg.GenerateMaxCount = 2
	s := newServerForTest(t, cfg)
	w := do(t, s, http.MethodPost, "/v1/ids/generate", `{"count":5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestDecomposeHandler(t *testing.T) {
	s := newServerForTest(t, cfgpkg.Default())
	w := do(t, s, http.MethodPost, "/v1/ids/generate", "")
	var gen generateResp
	if err := json.Unmarshal(w.Body.Bytes(), &gen); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := gen.Ids[0]

	w = do(t, s, http.MethodPost, "/v1/ids/decompose", `{"base62":"`+id.Base62+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", w.Code, w.Body.String())
	}
	var p idsvc.Parts
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != id.ID || p.Base62 != id.Base62 {
		t.Fatalf("decompose mismatch: %+v vs %+v", p, id)
	}

	// Same id by decimal string.
	w = do(t, s, http.MethodPost, `/v1/ids/decompose`, `{"id":"`+strings.TrimSpace(jsonUint(p.ID))+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}

	w = do(t, s, http.MethodPost, "/v1/ids/decompose", `{"base62":"abc!def"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	w = do(t, s, http.MethodPost, "/v1/ids/decompose", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
}

func jsonUint(v uint64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestNodesHandler(t *testing.T) {
	s := newServerForTest(t, cfgpkg.Default())
	w := do(t, s, http.MethodGet, "/v1/nodes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var resp struct {
		Nodes []struct {
			NodeID     uint64 `json:"nodeId"`
			InstanceID string `json:"instanceId"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Nodes) != 1 || resp.Nodes[0].InstanceID == "" {
		t.Fatalf("unexpected nodes: %+v", resp.Nodes)
	}
}

func TestJournalHandler(t *testing.T) {
	s := newServerForTest(t, cfgpkg.Default())
	w := do(t, s, http.MethodGet, "/v1/journal?filter="+`type+%3D%3D+%22lease_acquired%22`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Entries []struct {
			Type string `json:"type"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].Type != "lease_acquired" {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}

	w = do(t, s, http.MethodGet, "/v1/journal?filter=not+a+cel+expr", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
}
