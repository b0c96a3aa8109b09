package config

import (
	"os"
	"strconv"
)

// FromEnv overlays SNOWID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("SNOWID_NODE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.NodeID = n
		}
	}
	if v := os.Getenv("SNOWID_TIMESTAMP_BITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			cfg.Layout.TimestampBits = uint8(n)
		}
	}
	if v := os.Getenv("SNOWID_NODE_BITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			cfg.Layout.NodeBits = uint8(n)
		}
	}
	if v := os.Getenv("SNOWID_SEQUENCE_BITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			cfg.Layout.SequenceBits = uint8(n)
		}
	}
	if v := os.Getenv("SNOWID_EPOCH_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Layout.EpochMs = n
		}
	}
	if v := os.Getenv("SNOWID_LEASE_TTL_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.LeaseTTLMs = n
		}
	}
	if v := os.Getenv("SNOWID_JOURNAL_MAX_ENTRIES"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.JournalMaxEntries = n
		}
	}
	if v := os.Getenv("SNOWID_GENERATE_MAX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.GenerateMaxCount = n
		}
	}
}
