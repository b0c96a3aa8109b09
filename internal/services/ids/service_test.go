package idsvc

import (
	"context"
	"testing"

	cfgpkg "github.com/rzbill/snowid/internal/config"
	"github.com/rzbill/snowid/internal/runtime"
	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
	"github.com/rzbill/snowid/pkg/snowid"
)

func newServiceForTest(t *testing.T, cfg cfgpkg.Config) *Service {
	t.Helper()
	rt, err := runtime.Open(runtime.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever, Config: cfg})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	return New(rt)
}

func TestGenerateDefaultsToOne(t *testing.T) {
	svc := newServiceForTest(t, cfgpkg.Default())
	out, err := svc.Generate(context.Background(), 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 id, got %d", len(out))
	}
	if got := snowid.EncodeBase62(out[0].ID); got != out[0].Base62 {
		t.Fatalf("base62 mismatch: %q vs %q", got, out[0].Base62)
	}
}

func TestGenerateBatchUniqueAndOrdered(t *testing.T) {
	svc := newServiceForTest(t, cfgpkg.Default())
	out, err := svc.Generate(context.Background(), 500)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out) != 500 {
		t.Fatalf("expected 500 ids, got %d", len(out))
	}
	seen := make(map[uint64]bool, len(out))
	for i, g := range out {
		if seen[g.ID] {
			t.Fatalf("duplicate id %d", g.ID)
		}
		seen[g.ID] = true
		if i > 0 && g.ID <= out[i-1].ID {
			t.Fatalf("ids not increasing at %d: %d <= %d", i, g.ID, out[i-1].ID)
		}
	}
}

func TestGenerateRejectsOversizeBatch(t *testing.T) {
	cfg := cfgpkg.Default()
	cfg.GenerateMaxCount = 10
	svc := newServiceForTest(t, cfg)
	if _, err := svc.Generate(context.Background(), 11); err == nil {
		t.Fatalf("expected cap error")
	}
	if out, err := svc.Generate(context.Background(), 10); err != nil || len(out) != 10 {
		t.Fatalf("at-cap batch failed: %v (%d ids)", err, len(out))
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	svc := newServiceForTest(t, cfgpkg.Default())
	out, err := svc.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	p := svc.Decompose(context.Background(), out[0].ID)
	if p.ID != out[0].ID || p.Base62 != out[0].Base62 {
		t.Fatalf("decompose mismatch: %+v vs %+v", p, out[0])
	}
	if p.WallMs != cfgpkg.Default().Layout.EpochMs+int64(p.Timestamp) {
		t.Fatalf("wallMs not epoch-relative: %d", p.WallMs)
	}

	p2, err := svc.DecomposeBase62(context.Background(), out[0].Base62)
	if err != nil {
		t.Fatalf("decompose base62: %v", err)
	}
	if p2 != p {
		t.Fatalf("base62 decompose mismatch: %+v vs %+v", p2, p)
	}
}

func TestDecomposeBase62Rejects(t *testing.T) {
	svc := newServiceForTest(t, cfgpkg.Default())
	if _, err := svc.DecomposeBase62(context.Background(), "abc!def"); err == nil {
		t.Fatalf("expected invalid base62 error")
	}
}
