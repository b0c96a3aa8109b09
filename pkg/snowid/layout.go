package snowid

import (
	"errors"
	"fmt"
)

// IDBits is the total width of a generated identifier.
const IDBits = 64

// DefaultEpochMs is 2024-01-01T00:00:00Z in Unix milliseconds.
const DefaultEpochMs int64 = 1704067200000

// ErrInvalidLayout is returned when bit widths do not describe a usable id.
var ErrInvalidLayout = errors.New("snowid: invalid bit layout")

// Layout defines how the 64 id bits split between timestamp, node and
// sequence, and the epoch the timestamp counts from. A Layout is immutable
// once built and safe to share across any number of generators.
type Layout struct {
	timestampBits uint8
	nodeBits      uint8
	sequenceBits  uint8
	epochMs       int64
}

// NewLayout validates the widths and returns a Layout. The three widths must
// sum to IDBits and every field needs at least one bit.
func NewLayout(timestampBits, nodeBits, sequenceBits uint8, epochMs int64) (Layout, error) {
	l := Layout{
		timestampBits: timestampBits,
		nodeBits:      nodeBits,
		sequenceBits:  sequenceBits,
		epochMs:       epochMs,
	}
	if err := l.validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// DefaultLayout is the stock 42/10/12 split: ~139 years of timestamps,
// 1024 nodes, 4096 ids per node per millisecond.
func DefaultLayout() Layout {
	return Layout{timestampBits: 42, nodeBits: 10, sequenceBits: 12, epochMs: DefaultEpochMs}
}

func (l Layout) validate() error {
	if l.timestampBits == 0 || l.nodeBits == 0 || l.sequenceBits == 0 {
		return fmt.Errorf("%w: every field needs at least one bit (%d/%d/%d)",
			ErrInvalidLayout, l.timestampBits, l.nodeBits, l.sequenceBits)
	}
	total := int(l.timestampBits) + int(l.nodeBits) + int(l.sequenceBits)
	if total != IDBits {
		return fmt.Errorf("%w: widths must sum to %d, got %d (%d+%d+%d)",
			ErrInvalidLayout, IDBits, total, l.timestampBits, l.nodeBits, l.sequenceBits)
	}
	return nil
}

// TimestampBits returns the timestamp field width.
func (l Layout) TimestampBits() uint8 { return l.timestampBits }

// NodeBits returns the node field width.
func (l Layout) NodeBits() uint8 { return l.nodeBits }

// SequenceBits returns the sequence field width.
func (l Layout) SequenceBits() uint8 { return l.sequenceBits }

// EpochMs returns the layout epoch in Unix milliseconds.
func (l Layout) EpochMs() int64 { return l.epochMs }

// MaxNode is the largest node id the layout can carry.
func (l Layout) MaxNode() uint64 { return 1<<l.nodeBits - 1 }

// MaxSequence is the largest per-millisecond sequence the layout can carry.
func (l Layout) MaxSequence() uint64 { return 1<<l.sequenceBits - 1 }

func (l Layout) nodeShift() uint8 { return l.sequenceBits }

func (l Layout) timestampShift() uint8 { return l.nodeBits + l.sequenceBits }

// Pack combines the three fields into one id. Fields are assumed in range.
func (l Layout) Pack(timestamp, node, sequence uint64) uint64 {
	return timestamp<<l.timestampShift() | node<<l.nodeShift() | sequence
}

// Decompose splits any 64-bit value into (timestamp, node, sequence) by pure
// masking. It does not validate that the value was minted under this layout.
func (l Layout) Decompose(id uint64) (timestamp, node, sequence uint64) {
	timestamp = id >> l.timestampShift()
	node = id >> l.nodeShift() & l.MaxNode()
	sequence = id & l.MaxSequence()
	return
}
