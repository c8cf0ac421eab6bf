package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Telemetry.ServiceName != "cloudconnect" {
		t.Errorf("default service name = %q, want cloudconnect", cfg.Telemetry.ServiceName)
	}
	if cfg.Telemetry.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Telemetry.Logging.Level)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
telemetry:
  logging:
    level: debug
  audit:
    database: audit.db
  metrics:
    enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Telemetry.Logging.Level)
	}
	if cfg.Telemetry.Audit.Database != "audit.db" {
		t.Errorf("audit database = %q, want audit.db", cfg.Telemetry.Audit.Database)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("metrics should be enabled")
	}

	// Unset fields keep their defaults.
	if cfg.Telemetry.ServiceName != "cloudconnect" {
		t.Errorf("service name = %q, want default", cfg.Telemetry.ServiceName)
	}
	if cfg.Telemetry.Metrics.ListenAddress != ":9090" {
		t.Errorf("metrics address = %q, want default :9090", cfg.Telemetry.Metrics.ListenAddress)
	}
	if !cfg.Telemetry.Audit.Console {
		t.Error("audit console sink should keep its default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() on missing file should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "telemetry: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() on malformed YAML should fail")
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := writeConfig(t, `
telemetry:
  logging:
    level: loud
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with invalid log level should fail")
	}
}
