package chat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestLoadConfigClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := "delay_min_ms: -5\ndelay_max_ms: 0\nhistory_limit: 0\nuser_name: \"\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DelayMinMs != 1000 {
		t.Fatalf("DelayMinMs = %d", cfg.DelayMinMs)
	}
	if cfg.DelayMaxMs != 2000 {
		t.Fatalf("DelayMaxMs = %d", cfg.DelayMaxMs)
	}
	if cfg.HistoryLimit != 50 {
		t.Fatalf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if cfg.UserName != "You" {
		t.Fatalf("UserName = %q", cfg.UserName)
	}
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := Config{
		StateDir:     "/tmp/docchat-test",
		DelayMinMs:   100,
		DelayMaxMs:   250,
		HistoryLimit: 10,
		UserName:     "Dana",
	}
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip: got %+v want %+v", got, cfg)
	}
}
