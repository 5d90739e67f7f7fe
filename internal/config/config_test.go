package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kitchenbuddy/pantry/internal/config"
	"github.com/kitchenbuddy/pantry/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	configDir := filepath.Join(homeDir, ".config", "pantry")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, config.ProjectFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Store.Backend != "" {
		t.Errorf("expected empty backend, got %q", cfg.Store.Backend)
	}
	if cfg.Expiring.Days != 0 {
		t.Errorf("expected zero expiring days, got %d", cfg.Expiring.Days)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
[store]
backend = "sqlite"
data-dir = "  /var/lib/pantry "

[barcode]
endpoint = "http://localhost:9999/api/v0/product"
timeout = "3s"

[expiring]
days = 30

[log]
level = "debug"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Backend != "sqlite" {
		t.Errorf("Backend = %q, expected %q", cfg.Store.Backend, "sqlite")
	}
	if cfg.Store.DataDir != "/var/lib/pantry" {
		t.Errorf("DataDir = %q, expected %q", cfg.Store.DataDir, "/var/lib/pantry")
	}
	if cfg.Barcode.Endpoint != "http://localhost:9999/api/v0/product" {
		t.Errorf("Endpoint = %q", cfg.Barcode.Endpoint)
	}
	timeout, err := cfg.Barcode.TimeoutDuration()
	if err != nil {
		t.Fatalf("parse timeout: %v", err)
	}
	if timeout != 3*time.Second {
		t.Errorf("Timeout = %v, expected 3s", timeout)
	}
	if cfg.Expiring.Days != 30 {
		t.Errorf("Days = %d, expected 30", cfg.Expiring.Days)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, "[store\nbackend = ")

	if _, err := config.Load(tmpDir); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[store]
backend = "sqlite"

[expiring]
days = 3
`)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Backend != "sqlite" {
		t.Errorf("Backend = %q, expected %q", cfg.Store.Backend, "sqlite")
	}
	if cfg.Expiring.Days != 3 {
		t.Errorf("Days = %d, expected 3", cfg.Expiring.Days)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[store]
backend = "sqlite"
data-dir = "/global/data"

[log]
level = "info"
`)

	repoDir := t.TempDir()
	writeProjectConfig(t, repoDir, `
[store]
backend = "memory"

[expiring]
days = 0
`)

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Backend != "memory" {
		t.Errorf("Backend = %q, expected %q", cfg.Store.Backend, "memory")
	}
	if cfg.Store.DataDir != "/global/data" {
		t.Errorf("DataDir = %q, expected %q", cfg.Store.DataDir, "/global/data")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, expected %q", cfg.Log.Level, "info")
	}
	if cfg.Expiring.Days != 0 {
		t.Errorf("Days = %d, expected 0", cfg.Expiring.Days)
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[barcode]
endpoint = "http://global.example/api"
`)

	repoDir := t.TempDir()
	writeProjectConfig(t, repoDir, `
[barcode]
endpoint = ""
`)

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Barcode.Endpoint != "" {
		t.Errorf("Endpoint = %q, expected empty", cfg.Barcode.Endpoint)
	}
}

func TestBarcodeTimeoutDuration(t *testing.T) {
	d, err := config.Barcode{}.TimeoutDuration()
	if err != nil || d != 0 {
		t.Fatalf("expected zero duration for empty timeout, got %v, %v", d, err)
	}

	if _, err := (config.Barcode{Timeout: "soon"}).TimeoutDuration(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
