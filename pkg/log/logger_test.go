package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormatterFieldsSortedAndQuoted(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(DebugLevel),
		WithFormatter(&TextFormatter{}),
		WithOutput(&WriterOutput{W: &buf}),
	)
	l.Info("server started", Str("http", ":8080"), Str("msg with space", "a b"), Component("server"))

	line := buf.String()
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "server started") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, `component=server`) {
		t.Fatalf("missing component field: %q", line)
	}
	if !strings.Contains(line, `"a b"`) {
		t.Fatalf("expected quoted value: %q", line)
	}
	// component sorts before http
	if strings.Index(line, "component=") > strings.Index(line, "http=") {
		t.Fatalf("fields not sorted: %q", line)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithFormatter(&JSONFormatter{}),
		WithOutput(&WriterOutput{W: &buf}),
	)
	l.Info("minted", Uint64("node", 42), Int("count", 3))

	var obj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("unmarshal: %v (%q)", err, buf.String())
	}
	if obj["msg"] != "minted" || obj["level"] != "info" {
		t.Fatalf("unexpected object: %v", obj)
	}
	if obj["node"].(float64) != 42 {
		t.Fatalf("node field: %v", obj["node"])
	}
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(WarnLevel),
		WithFormatter(&TextFormatter{}),
		WithOutput(&WriterOutput{W: &buf}),
	)
	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	if got := buf.String(); strings.Contains(got, "dropped") || !strings.Contains(got, "kept") {
		t.Fatalf("level gating broken: %q", got)
	}
}

func TestWithInheritsAndOverrides(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(
		WithLevel(DebugLevel),
		WithFormatter(&TextFormatter{}),
		WithOutput(&WriterOutput{W: &buf}),
	)
	child := base.With(Component("registry"), Uint64("node", 1))
	child.Info("lease acquired", Uint64("node", 2))

	line := buf.String()
	if !strings.Contains(line, "component=registry") {
		t.Fatalf("missing inherited field: %q", line)
	}
	// call-site field wins over the inherited one
	if !strings.Contains(line, "node=2") || strings.Contains(line, "node=1") {
		t.Fatalf("field override broken: %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": DebugLevel, "INFO": InfoLevel, "Warn": WarnLevel, "error": ErrorLevel} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestApplyConfig(t *testing.T) {
	l, err := ApplyConfig(&Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if l.GetLevel() != DebugLevel {
		t.Fatalf("level: %v", l.GetLevel())
	}
	if _, err := ApplyConfig(&Config{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
