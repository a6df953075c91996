package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Solver.CornerSearchDepth != 5 || cfg.Solver.EdgeSearchDepth != 3 {
		t.Errorf("default search depths = %d/%d, want 5/3", cfg.Solver.CornerSearchDepth, cfg.Solver.EdgeSearchDepth)
	}
	if cfg.BLE.ScanTimeout != 5*time.Second {
		t.Errorf("default scan timeout = %s, want 5s", cfg.BLE.ScanTimeout)
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("db_path: /tmp/solves.db\nsolver:\n  corner_search_depth: 6\nble:\n  scan_timeout: 10s\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DBPath != "/tmp/solves.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.Solver.CornerSearchDepth != 6 {
		t.Errorf("corner depth = %d, want 6", cfg.Solver.CornerSearchDepth)
	}
	if cfg.Solver.EdgeSearchDepth != 3 {
		t.Errorf("edge depth = %d, want default 3", cfg.Solver.EdgeSearchDepth)
	}
	if cfg.BLE.ScanTimeout != 10*time.Second {
		t.Errorf("scan timeout = %s, want 10s", cfg.BLE.ScanTimeout)
	}
	if cfg.BLE.NamePrefix != "gocube" {
		t.Errorf("name prefix = %q, want default", cfg.BLE.NamePrefix)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("solver: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted invalid YAML")
	}
}
