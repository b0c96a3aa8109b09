// Package journal implements the operational journal: an append-only log of
// registry and generator events (lease turnover, clock rollbacks) persisted
// in Pebble.
//
// # Keyspace
//
// Keys are lexicographically ordered for range scans:
//   - journal/m           (metadata: last assigned seq, 8 bytes BE)
//   - journal/e/{seq_be8} (entries, JSON)
//
// Scans accept an optional CEL expression evaluated per entry with the
// variables type, node, seq, ts_ms, now_ms and detail (parsed JSON), e.g.
//
//	type == "lease_acquired" && node >= 2
package journal
