package quill

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFileMissingFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("unexpected error for a missing config file: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected the zero Config, got %+v", cfg)
	}
}

func TestLoadConfigFileReadsEngineSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quill.toml")
	body := "[engine]\nstep_quota = 1000\nrecursion_limit = 32\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StepQuota != 1000 || cfg.RecursionLimit != 32 {
		t.Fatalf("got %+v, want StepQuota=1000 RecursionLimit=32", cfg)
	}
}

func TestLoadConfigFileMalformedIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quill.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("expected a parse error for malformed TOML")
	}
}
