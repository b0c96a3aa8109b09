package snowid

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNodeOutOfRange is returned when a node id does not fit the layout.
var ErrNodeOutOfRange = errors.New("snowid: node id out of range")

// NowMs returns current time in milliseconds since the Unix epoch.
// Overridable for tests.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// Generator mints ids for a single node identity. All minting is serialized
// under one mutex so concurrent callers can never observe the same
// (timestamp, sequence) pair. Decompose methods are read-only and lock-free.
type Generator struct {
	layout Layout
	node   uint64

	mu       sync.Mutex
	lastTs   int64
	sequence uint64
}

// New builds a Generator over DefaultLayout.
func New(nodeID uint64) (*Generator, error) {
	return NewWithLayout(nodeID, DefaultLayout())
}

// NewWithLayout builds a Generator bound to nodeID under the given layout.
// Fails when the layout is invalid or nodeID exceeds its node capacity.
func NewWithLayout(nodeID uint64, layout Layout) (*Generator, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if nodeID > layout.MaxNode() {
		return nil, fmt.Errorf("%w: %d exceeds layout maximum %d", ErrNodeOutOfRange, nodeID, layout.MaxNode())
	}
	return &Generator{layout: layout, node: nodeID, lastTs: -1}, nil
}

// Layout returns the generator's layout.
func (g *Generator) Layout() Layout { return g.layout }

// Node returns the node id the generator was built with.
func (g *Generator) Node() uint64 { return g.node }

// Generate returns the next id. Ids from one generator are strictly
// increasing. A regressing wall clock pins minting to the last seen
// millisecond; exhausting a millisecond's sequence space sleeps until the
// clock moves on. Generate never fails.
func (g *Generator) Generate() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := NowMs() - g.layout.epochMs
	if ts < g.lastTs {
		// Clock went backwards. Keep issuing against the last timestamp so
		// already-minted (timestamp, sequence) pairs are never reused.
		ts = g.lastTs
	}
	if ts == g.lastTs {
		g.sequence++
		if g.sequence > g.layout.MaxSequence() {
			ts = g.waitNextMs(g.lastTs)
			g.sequence = 0
		}
	} else {
		g.sequence = 0
	}
	g.lastTs = ts
	return g.layout.Pack(uint64(ts), g.node, g.sequence)
}

// GenerateBase62 returns the next id in base62 form.
func (g *Generator) GenerateBase62() string {
	return EncodeBase62(g.Generate())
}

// GenerateBase62WithRaw returns the next id in both representations so
// callers can cross-check without re-decoding.
func (g *Generator) GenerateBase62WithRaw() (string, uint64) {
	id := g.Generate()
	return EncodeBase62(id), id
}

// Decompose splits id into its epoch-relative timestamp, node and sequence
// under this generator's layout.
func (g *Generator) Decompose(id uint64) (timestamp, node, sequence uint64) {
	return g.layout.Decompose(id)
}

// DecomposeBase62 decodes s and decomposes the result. Codec errors
// propagate unchanged.
func (g *Generator) DecomposeBase62(s string) (timestamp, node, sequence uint64, err error) {
	id, err := DecodeBase62(s)
	if err != nil {
		return 0, 0, 0, err
	}
	timestamp, node, sequence = g.layout.Decompose(id)
	return timestamp, node, sequence, nil
}

// LastTimestamp returns the epoch-relative millisecond of the most recently
// minted id, or -1 before the first Generate.
func (g *Generator) LastTimestamp() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastTs
}

// waitNextMs sleeps until the epoch-relative clock passes last.
func (g *Generator) waitNextMs(last int64) int64 {
	for {
		ts := NowMs() - g.layout.epochMs
		if ts > last {
			return ts
		}
		time.Sleep(time.Millisecond / 8)
	}
}
