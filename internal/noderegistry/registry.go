package noderegistry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
)

var (
	// ErrNodeTaken reports that the requested node id is actively leased by
	// another instance.
	ErrNodeTaken = errors.New("noderegistry: node id actively leased")
	// ErrExhausted reports that every node id in the layout is actively leased.
	ErrExhausted = errors.New("noderegistry: no free node id")
	// ErrNotHeld reports a renew/release against a lease the instance does
	// not hold.
	ErrNotHeld = errors.New("noderegistry: lease not held by instance")
)

// NowMs returns current time in milliseconds since the Unix epoch.
// Overridable for tests.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// Lease is one node id held by a process instance.
type Lease struct {
	NodeID       uint64 `json:"nodeId"`
	InstanceID   string `json:"instanceId"`
	Hostname     string `json:"hostname"`
	AcquiredAtMs int64  `json:"acquiredAtMs"`
	RenewedAtMs  int64  `json:"renewedAtMs"`
	ExpiresAtMs  int64  `json:"expiresAtMs"`
	// LastIssuedMs is the highest wall-clock millisecond any id was minted
	// at under this node id. It survives lease turnover.
	LastIssuedMs int64 `json:"lastIssuedMs"`
}

// Active reports whether the lease is unexpired at nowMs.
func (l Lease) Active(nowMs int64) bool { return l.ExpiresAtMs > nowMs }

// Registry hands out node-id leases from a shared Pebble store.
type Registry struct {
	db      *pebblestore.DB
	maxNode uint64
	ttl     time.Duration

	mu sync.Mutex
}

// New builds a Registry over ids [0, maxNode].
func New(db *pebblestore.DB, maxNode uint64, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Registry{db: db, maxNode: maxNode, ttl: ttl}
}

// Acquire leases the lowest node id that is free or expired. The previous
// holder's LastIssuedMs is preserved across turnover.
func (r *Registry) Acquire(ctx context.Context, instanceID, hostname string) (*Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := NowMs()
	leases, err := r.scan()
	if err != nil {
		return nil, err
	}

	var next uint64
	var reuse *Lease
	for i := range leases {
		l := leases[i]
		if l.NodeID > r.maxNode || l.NodeID != next {
			break // gap (or records beyond the layout): next is free
		}
		if !l.Active(now) && reuse == nil {
			reuse = &leases[i]
		}
		next = l.NodeID + 1
	}
	if next <= r.maxNode {
		return r.write(ctx, Lease{NodeID: next, InstanceID: instanceID, Hostname: hostname, AcquiredAtMs: now}, 0)
	}
	if reuse != nil {
		return r.write(ctx, Lease{NodeID: reuse.NodeID, InstanceID: instanceID, Hostname: hostname, AcquiredAtMs: now}, reuse.LastIssuedMs)
	}
	return nil, fmt.Errorf("%w: all %d ids held", ErrExhausted, r.maxNode+1)
}

// AcquireNode leases a specific node id. Fails with ErrNodeTaken while
// another instance holds it unexpired.
func (r *Registry) AcquireNode(ctx context.Context, nodeID uint64, instanceID, hostname string) (*Lease, error) {
	if nodeID > r.maxNode {
		return nil, fmt.Errorf("noderegistry: node id %d exceeds maximum %d", nodeID, r.maxNode)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := NowMs()
	prev, err := r.get(nodeID)
	if err != nil && !errors.Is(err, pebblestore.ErrNotFound) {
		return nil, err
	}
	var lastIssued int64
	if prev != nil {
		if prev.Active(now) && prev.InstanceID != instanceID {
			return nil, fmt.Errorf("%w: node %d held by %s until %d", ErrNodeTaken, nodeID, prev.InstanceID, prev.ExpiresAtMs)
		}
		lastIssued = prev.LastIssuedMs
	}
	return r.write(ctx, Lease{NodeID: nodeID, InstanceID: instanceID, Hostname: hostname, AcquiredAtMs: now}, lastIssued)
}

// Renew extends the lease held by instanceID.
func (r *Registry) Renew(ctx context.Context, nodeID uint64, instanceID string) (*Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.get(nodeID)
	if err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return nil, ErrNotHeld
		}
		return nil, err
	}
	if l.InstanceID != instanceID {
		return nil, fmt.Errorf("%w: node %d held by %s", ErrNotHeld, nodeID, l.InstanceID)
	}
	now := NowMs()
	l.RenewedAtMs = now
	l.ExpiresAtMs = now + r.ttl.Milliseconds()
	if err := r.put(*l); err != nil {
		return nil, err
	}
	return l, nil
}

// Release drops the lease held by instanceID. The record is kept with an
// expired lease so LastIssuedMs remains available to the next holder.
func (r *Registry) Release(ctx context.Context, nodeID uint64, instanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.get(nodeID)
	if err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return ErrNotHeld
		}
		return err
	}
	if l.InstanceID != instanceID {
		return fmt.Errorf("%w: node %d held by %s", ErrNotHeld, nodeID, l.InstanceID)
	}
	l.ExpiresAtMs = NowMs()
	return r.put(*l)
}

// RecordLastIssued raises the node's minted high-water mark. Values below
// the stored mark are ignored.
func (r *Registry) RecordLastIssued(ctx context.Context, nodeID uint64, tsMs int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.get(nodeID)
	if err != nil {
		return err
	}
	if tsMs <= l.LastIssuedMs {
		return nil
	}
	l.LastIssuedMs = tsMs
	return r.put(*l)
}

// Lease returns the stored lease for nodeID.
func (r *Registry) Lease(nodeID uint64) (*Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(nodeID)
}

// List returns all lease records, node id ascending.
func (r *Registry) List(ctx context.Context) ([]Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scan()
}

func (r *Registry) write(ctx context.Context, l Lease, lastIssued int64) (*Lease, error) {
	now := l.AcquiredAtMs
	l.RenewedAtMs = now
	l.ExpiresAtMs = now + r.ttl.Milliseconds()
	l.LastIssuedMs = lastIssued
	if err := r.put(l); err != nil {
		return nil, err
	}
	out := l
	return &out, nil
}

func (r *Registry) get(nodeID uint64) (*Lease, error) {
	b, err := r.db.Get(keyNode(nodeID))
	if err != nil {
		return nil, err
	}
	var l Lease
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("noderegistry: corrupt lease for node %d: %w", nodeID, err)
	}
	return &l, nil
}

func (r *Registry) put(l Lease) error {
	b, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return r.db.Set(keyNode(l.NodeID), b)
}

func (r *Registry) scan() ([]Lease, error) {
	upper := append(append([]byte{}, nodePrefix...), 0xff)
	it, err := r.db.NewIter(&pebble.IterOptions{LowerBound: nodePrefix, UpperBound: upper})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []Lease
	for it.First(); it.Valid(); it.Next() {
		if _, ok := nodeIDFromKey(it.Key()); !ok {
			continue
		}
		var l Lease
		if err := json.Unmarshal(it.Value(), &l); err != nil {
			continue // skip corrupt records
		}
		out = append(out, l)
	}
	return out, nil
}
