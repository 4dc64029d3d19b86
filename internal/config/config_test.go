package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("pipes:\n  gap: 160\ntick_rate: 60\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Pipes.Gap != 160 {
		t.Errorf("Pipes.Gap = %d, expected 160", cfg.Pipes.Gap)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	// Untouched keys keep their defaults
	if cfg.Pipes.Velocity != 4 {
		t.Errorf("Pipes.Velocity = %v, expected default 4", cfg.Pipes.Velocity)
	}
	if cfg.Bird.StartX != 230 {
		t.Errorf("Bird.StartX = %v, expected default 230", cfg.Bird.StartX)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.TickRate = 0
	cfg.Pipes.MinGapCenter = 300
	cfg.Pipes.MaxGapCenter = 300
	cfg.Ground.Y = 100

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	msg := err.Error()
	for _, want := range []string{"tick_rate", "gap center range", "ground.y"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("pipes: [1, 2")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("ground:\n  y: 700\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Ground.Y != 700 {
		t.Errorf("Ground.Y = %v, expected 700", cfg.Ground.Y)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "max_gap_center: 450") {
		t.Errorf("marshaled YAML should use snake_case keys:\n%s", data)
	}
}
