package runtime

import (
	"context"
	"testing"

	"github.com/rzbill/snowid/internal/config"
	"github.com/rzbill/snowid/internal/journal"
	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
)

func openTestRuntime(t *testing.T, cfg config.Config) *Runtime {
	t.Helper()
	rt, err := Open(Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever, Config: cfg})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	return rt
}

func TestOpenAutoLeasesNodeZero(t *testing.T) {
	rt := openTestRuntime(t, config.Default())
	if rt.Lease().NodeID != 0 {
		t.Fatalf("expected node 0, got %d", rt.Lease().NodeID)
	}
	if rt.Generator().Node() != 0 {
		t.Fatalf("generator node mismatch")
	}
	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestOpenPinnedNode(t *testing.T) {
	cfg := config.Default()
	cfg.NodeID = 42
	rt := openTestRuntime(t, cfg)
	if rt.Generator().Node() != 42 {
		t.Fatalf("expected node 42, got %d", rt.Generator().Node())
	}
	_, node, _ := rt.Generator().Decompose(rt.Generator().Generate())
	if node != 42 {
		t.Fatalf("minted id carries node %d", node)
	}
}

func TestOpenRejectsPinnedNodeBeyondLayout(t *testing.T) {
	cfg := config.Default()
	cfg.NodeID = 5000 // default layout caps at 1023
	if _, err := Open(Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever, Config: cfg}); err == nil {
		t.Fatalf("expected error for out-of-range pinned node")
	}
}

func TestJournalRecordsLeaseLifecycle(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	rt, err := Open(Options{DataDir: dir, Fsync: pebblestore.FsyncModeNever, Config: cfg})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rt.Generator().Generate()
	if err := rt.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	rt2, err := Open(Options{DataDir: dir, Fsync: pebblestore.FsyncModeNever, Config: cfg})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer rt2.Close()

	entries, err := rt2.Journal().Scan(context.Background(), journal.ScanOptions{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var acquired, released int
	for _, e := range entries {
		switch e.Type {
		case journal.EventLeaseAcquired:
			acquired++
		case journal.EventLeaseReleased:
			released++
		}
	}
	if acquired < 2 || released < 1 {
		t.Fatalf("expected lease lifecycle events, got %d acquired / %d released", acquired, released)
	}
}

func TestLastIssuedPersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	rt, err := Open(Options{DataDir: dir, Fsync: pebblestore.FsyncModeNever, Config: cfg})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rt.Generator().Generate()
	if err := rt.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	rt2, err := Open(Options{DataDir: dir, Fsync: pebblestore.FsyncModeNever, Config: cfg})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer rt2.Close()
	if rt2.Lease().LastIssuedMs <= 0 {
		t.Fatalf("expected persisted last-issued watermark, got %d", rt2.Lease().LastIssuedMs)
	}
}
