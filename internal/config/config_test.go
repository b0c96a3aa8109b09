package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rzbill/snowid/pkg/snowid"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.NodeID != AutoNodeID {
		t.Fatalf("default node id should be auto")
	}
	if cfg.Layout.TimestampBits != 42 || cfg.Layout.NodeBits != 10 || cfg.Layout.SequenceBits != 12 {
		t.Fatalf("default layout widths")
	}
	if cfg.Layout.EpochMs != snowid.DefaultEpochMs {
		t.Fatalf("default epoch")
	}
	if _, err := cfg.BitLayout(); err != nil {
		t.Fatalf("default layout should validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "snowid.json")
	data := []byte(`{"nodeId":7,"layout":{"timestampBits":40,"nodeBits":12,"sequenceBits":12,"epochMs":1600000000000},"leaseTtlMs":30000}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NodeID != 7 {
		t.Fatalf("expected node 7")
	}
	if cfg.Layout.NodeBits != 12 || cfg.Layout.EpochMs != 1600000000000 {
		t.Fatalf("layout not applied: %+v", cfg.Layout)
	}
	if cfg.LeaseTTLMs != 30000 {
		t.Fatalf("expected lease ttl 30000")
	}
	// untouched keys keep defaults
	if cfg.GenerateMaxCount != 1024 {
		t.Fatalf("expected default generate cap")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "snowid.yaml")
	data := []byte("nodeId: 3\nlayout:\n  timestampBits: 41\n  nodeBits: 11\n  sequenceBits: 12\n  epochMs: 1704067200000\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NodeID != 3 || cfg.Layout.TimestampBits != 41 || cfg.Layout.NodeBits != 11 {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalidLayout(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "snowid.json")
	data := []byte(`{"layout":{"timestampBits":40,"nodeBits":10,"sequenceBits":12,"epochMs":0}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); !errors.Is(err, snowid.ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("SNOWID_NODE_ID", "99")
	os.Setenv("SNOWID_NODE_BITS", "12")
	os.Setenv("SNOWID_SEQUENCE_BITS", "10")
	os.Setenv("SNOWID_LEASE_TTL_MS", "15000")
	t.Cleanup(func() {
		os.Unsetenv("SNOWID_NODE_ID")
		os.Unsetenv("SNOWID_NODE_BITS")
		os.Unsetenv("SNOWID_SEQUENCE_BITS")
		os.Unsetenv("SNOWID_LEASE_TTL_MS")
	})
	FromEnv(&cfg)
	if cfg.NodeID != 99 {
		t.Fatalf("env override node id")
	}
	if cfg.Layout.NodeBits != 12 || cfg.Layout.SequenceBits != 10 {
		t.Fatalf("env override layout")
	}
	if cfg.LeaseTTLMs != 15000 {
		t.Fatalf("env override lease ttl")
	}
}
