package noderegistry

import "encoding/binary"

var nodePrefix = []byte("node/")

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// keyNode builds the lease key with a big-endian node id for ordered scans.
func keyNode(nodeID uint64) []byte {
	k := make([]byte, 0, len(nodePrefix)+8)
	k = append(k, nodePrefix...)
	k = appendBE8(k, nodeID)
	return k
}

// nodeIDFromKey recovers the node id from a lease key.
func nodeIDFromKey(key []byte) (uint64, bool) {
	if len(key) != len(nodePrefix)+8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(key[len(nodePrefix):]), true
}
