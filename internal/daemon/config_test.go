package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8484 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8484)
	}
	if cfg.Data.Dir == "" {
		t.Error("Data.Dir should default to the home directory")
	}
	if cfg.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus should default to off")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("ECOTRACK_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 8484 {
		t.Errorf("missing file must fall back to defaults, got port %d", cfg.API.Port)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ECOTRACK_HOME", home)

	content := "[api]\nhost = \"0.0.0.0\"\nport = 9999\n\n[telemetry]\nprometheus = true\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Host != "0.0.0.0" || cfg.API.Port != 9999 {
		t.Errorf("unexpected API config: %+v", cfg.API)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("telemetry override not applied")
	}
	// Untouched sections keep their defaults.
	if cfg.Data.Dir != home {
		t.Errorf("Data.Dir = %q, want %q", cfg.Data.Dir, home)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("ECOTRACK_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 7777
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.API.Port != 7777 {
		t.Errorf("round-trip port = %d, want 7777", loaded.API.Port)
	}
}
