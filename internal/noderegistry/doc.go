// Package noderegistry persists node-id leases in Pebble so that processes
// sharing a data directory never mint ids under the same node identity.
//
// # Keyspace
//
// Keys are lexicographically ordered so a scan walks node ids ascending:
//   - node/{id_be8} (lease record, JSON)
//
// A lease is held by one instance (uuid) and expires unless renewed. Expired
// leases are reclaimable, but their last-issued timestamp survives
// reacquisition: a process restarting on a machine whose clock rolled back
// starts minting above the old high-water mark instead of reissuing
// (timestamp, sequence) pairs.
package noderegistry
