package journal

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
)

// Event types recorded by the runtime.
const (
	EventLeaseAcquired = "lease_acquired"
	EventLeaseRenewed  = "lease_renewed"
	EventLeaseReleased = "lease_released"
	EventClockRollback = "clock_rollback"
)

// Entry is one journal record.
type Entry struct {
	Seq    uint64          `json:"seq"`
	Type   string          `json:"type"`
	Node   uint64          `json:"node"`
	TsMs   int64           `json:"tsMs"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

// Journal is an append-only event log with a bounded retention window.
type Journal struct {
	db         *pebblestore.DB
	maxEntries uint64

	mu      sync.Mutex
	lastSeq uint64
}

// Open loads the journal state from db. maxEntries of zero keeps everything.
func Open(db *pebblestore.DB, maxEntries uint64) (*Journal, error) {
	j := &Journal{db: db, maxEntries: maxEntries}
	b, err := db.Get(metaKey)
	switch {
	case err == nil && len(b) == 8:
		j.lastSeq = binary.BigEndian.Uint64(b)
	case errors.Is(err, pebblestore.ErrNotFound):
		// fresh journal
	case err != nil:
		return nil, err
	}
	return j, nil
}

// Append records an event and returns its assigned sequence. Appends past
// the retention window trim the oldest entry in the same batch.
func (j *Journal) Append(ctx context.Context, typ string, node uint64, detail any) (uint64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var raw json.RawMessage
	if detail != nil {
		b, err := json.Marshal(detail)
		if err != nil {
			return 0, fmt.Errorf("journal: marshal detail: %w", err)
		}
		raw = b
	}
	seq := j.lastSeq + 1
	e := Entry{Seq: seq, Type: typ, Node: node, TsMs: time.Now().UnixMilli(), Detail: raw}
	val, err := json.Marshal(e)
	if err != nil {
		return 0, err
	}

	batch := j.db.NewBatch()
	defer batch.Close()
	if err := batch.Set(keyEntry(seq), val, nil); err != nil {
		return 0, err
	}
	var meta [8]byte
	binary.BigEndian.PutUint64(meta[:], seq)
	if err := batch.Set(metaKey, meta[:], nil); err != nil {
		return 0, err
	}
	if j.maxEntries > 0 && seq > j.maxEntries {
		if err := batch.Delete(keyEntry(seq-j.maxEntries), nil); err != nil {
			return 0, err
		}
	}
	if err := j.db.CommitBatch(ctx, batch); err != nil {
		return 0, err
	}
	j.lastSeq = seq
	return seq, nil
}

// ScanOptions controls a journal scan.
type ScanOptions struct {
	// Filter is an optional CEL expression; entries it rejects are skipped.
	Filter string
	// Limit caps returned entries. Zero means no cap.
	Limit int
	// Reverse walks newest-first.
	Reverse bool
}

// Scan returns journal entries in sequence order, oldest first unless
// Reverse is set. An invalid filter expression fails the scan up front.
func (j *Journal) Scan(ctx context.Context, opts ScanOptions) ([]Entry, error) {
	filter, err := newCELFilter(opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("journal: filter: %w", err)
	}

	upper := append(append([]byte{}, entryPrefix...), 0xff)
	it, err := j.db.NewIter(&pebble.IterOptions{LowerBound: entryPrefix, UpperBound: upper})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []Entry
	advance := func() bool {
		if opts.Reverse {
			return it.Prev()
		}
		return it.Next()
	}
	ok := it.First()
	if opts.Reverse {
		ok = it.Last()
	}
	for ; ok && it.Valid(); ok = advance() {
		var e Entry
		if err := json.Unmarshal(it.Value(), &e); err != nil {
			continue // skip corrupt records
		}
		if !filter.Eval(e) {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

// LastSeq returns the most recently assigned sequence.
func (j *Journal) LastSeq() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastSeq
}
