package journal

import (
	"context"
	"testing"

	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
)

func newTestJournal(t *testing.T, maxEntries uint64) *Journal {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	j, err := Open(db, maxEntries)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	return j
}

func TestAppendAssignsSequence(t *testing.T) {
	j := newTestJournal(t, 0)
	ctx := context.Background()

	s1, err := j.Append(ctx, EventLeaseAcquired, 1, map[string]string{"instance": "a"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	s2, err := j.Append(ctx, EventLeaseRenewed, 1, nil)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if s1 != 1 || s2 != 2 {
		t.Fatalf("expected sequences 1,2 got %d,%d", s1, s2)
	}
	if j.LastSeq() != 2 {
		t.Fatalf("last seq: %d", j.LastSeq())
	}
}

func TestScanOrderAndLimit(t *testing.T) {
	j := newTestJournal(t, 0)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := j.Append(ctx, EventLeaseRenewed, uint64(i), nil); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := j.Scan(ctx, ScanOptions{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != 5 || entries[0].Seq != 1 || entries[4].Seq != 5 {
		t.Fatalf("unexpected scan: %+v", entries)
	}

	entries, err = j.Scan(ctx, ScanOptions{Reverse: true, Limit: 2})
	if err != nil {
		t.Fatalf("reverse scan: %v", err)
	}
	if len(entries) != 2 || entries[0].Seq != 5 || entries[1].Seq != 4 {
		t.Fatalf("unexpected reverse scan: %+v", entries)
	}
}

func TestScanCELFilter(t *testing.T) {
	j := newTestJournal(t, 0)
	ctx := context.Background()
	if _, err := j.Append(ctx, EventLeaseAcquired, 1, map[string]string{"instance": "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := j.Append(ctx, EventClockRollback, 1, map[string]int64{"deltaMs": 250}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := j.Append(ctx, EventLeaseAcquired, 2, nil); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := j.Scan(ctx, ScanOptions{Filter: `type == "lease_acquired" && node >= 2`})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != 1 || entries[0].Node != 2 {
		t.Fatalf("unexpected filtered scan: %+v", entries)
	}

	entries, err = j.Scan(ctx, ScanOptions{Filter: `type == "clock_rollback" && detail.deltaMs > 100`})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != EventClockRollback {
		t.Fatalf("unexpected detail scan: %+v", entries)
	}

	if _, err := j.Scan(ctx, ScanOptions{Filter: "this is not cel"}); err == nil {
		t.Fatalf("expected filter compile error")
	}
}

func TestRetentionTrimsOldest(t *testing.T) {
	j := newTestJournal(t, 3)
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		if _, err := j.Append(ctx, EventLeaseRenewed, 0, nil); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	entries, err := j.Scan(ctx, ScanOptions{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != 3 || entries[0].Seq != 4 || entries[2].Seq != 6 {
		t.Fatalf("expected window [4..6], got %+v", entries)
	}
}
