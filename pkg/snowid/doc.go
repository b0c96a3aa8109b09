// Package snowid generates distributed-unique, time-sortable 64-bit
// identifiers and provides a compact base62 text form for them.
//
// # Format
//
// An id packs three fields, high bits to low:
//
//	[timestamp][node][sequence]
//
// where timestamp is wall-clock milliseconds minus the layout epoch. The
// split is configurable through Layout; the default is 42/10/12 bits with a
// 2024-01-01 epoch. Because the timestamp occupies the high bits, integer
// comparison of two ids from one generator preserves issue order.
//
// # Monotonicity
//
// Generator serializes all minting under a single mutex:
//   - If the system clock regresses, it pins to the last seen millisecond and
//     keeps counting sequence so no (timestamp, sequence) pair is reused.
//   - If the sequence space of a millisecond is exhausted, it waits for the
//     next millisecond before emitting the next id.
//
// Usage
//
//	g, _ := snowid.New(42)
//	id := g.Generate()
//	s := g.GenerateBase62()
//	ts, node, seq := g.Decompose(id)
package snowid
