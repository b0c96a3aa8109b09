package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rzbill/snowid/pkg/snowid"
	"gopkg.in/yaml.v3"
)

// AutoNodeID requests a node id from the registry instead of pinning one.
const AutoNodeID int64 = -1

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// NodeID pins the generator's node identity. AutoNodeID (-1) makes the
	// server lease the lowest free id from the node registry on startup.
	NodeID int64  `json:"nodeId" yaml:"nodeId"`
	Layout Layout `json:"layout" yaml:"layout"`
	// LeaseTTLMs bounds how long a registry lease stays valid without renewal.
	LeaseTTLMs int64 `json:"leaseTtlMs" yaml:"leaseTtlMs"`
	// JournalMaxEntries caps the operational journal; older entries are
	// trimmed past it. Zero keeps everything.
	JournalMaxEntries uint64 `json:"journalMaxEntries" yaml:"journalMaxEntries"`
	// GenerateMaxCount caps how many ids a single API call may request.
	GenerateMaxCount int `json:"generateMaxCount" yaml:"generateMaxCount"`
}

// Layout mirrors snowid.Layout for declarative configuration.
type Layout struct {
	TimestampBits uint8 `json:"timestampBits" yaml:"timestampBits"`
	NodeBits      uint8 `json:"nodeBits" yaml:"nodeBits"`
	SequenceBits  uint8 `json:"sequenceBits" yaml:"sequenceBits"`
	EpochMs       int64 `json:"epochMs" yaml:"epochMs"`
}

// Default returns built-in defaults.
func Default() Config {
	l := snowid.DefaultLayout()
	return Config{
		NodeID: AutoNodeID,
		Layout: Layout{
			TimestampBits: l.TimestampBits(),
			NodeBits:      l.NodeBits(),
			SequenceBits:  l.SequenceBits(),
			EpochMs:       l.EpochMs(),
		},
		LeaseTTLMs:        60_000,
		JournalMaxEntries: 10_000,
		GenerateMaxCount:  1024,
	}
}

// BitLayout validates the declared widths and returns the core layout.
func (c Config) BitLayout() (snowid.Layout, error) {
	return snowid.NewLayout(c.Layout.TimestampBits, c.Layout.NodeBits, c.Layout.SequenceBits, c.Layout.EpochMs)
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if _, err := cfg.BitLayout(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
