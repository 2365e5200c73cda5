package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SWIFTLABEL_CONFIG", "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Resource.Path != "Config.toml" {
		t.Errorf("resource.path = %q, want %q", s.Resource.Path, "Config.toml")
	}
	if s.Log.File != "" {
		t.Errorf("log.file = %q, want empty", s.Log.File)
	}
	if s.Log.Level != "info" {
		t.Errorf("log.level = %q, want %q", s.Log.Level, "info")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[resource]
path = "/srv/hotel/Config.toml"

[log]
file = "/tmp/swiftlabel.log"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SWIFTLABEL_CONFIG", path)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Resource.Path != "/srv/hotel/Config.toml" {
		t.Errorf("resource.path = %q", s.Resource.Path)
	}
	if s.Log.File != "/tmp/swiftlabel.log" || s.Log.Level != "debug" {
		t.Errorf("log = %+v", s.Log)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SWIFTLABEL_CONFIG", "")
	t.Setenv("SWIFTLABEL_RESOURCE_PATH", "/etc/hotel.toml")
	t.Setenv("SWIFTLABEL_LOG_LEVEL", "warn")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Resource.Path != "/etc/hotel.toml" {
		t.Errorf("resource.path = %q, want env override", s.Resource.Path)
	}
	if s.Log.Level != "warn" {
		t.Errorf("log.level = %q, want env override", s.Log.Level)
	}
}
