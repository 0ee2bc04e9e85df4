package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points every implicit config location at an empty temp dir.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)
	for _, k := range []string{"TODO_CONFIG", "TODO_FORMAT", "TODO_THEME", "TODO_COLOR", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("expected %+v, got %+v", *want, *cfg)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
format = "plain"
theme = "Neon"
color = "never"
group = true
log_level = "debug"
log_format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Format != FormatPlain || cfg.Theme != "neon" || cfg.Color != ColorNever {
		t.Errorf("unexpected display settings: %+v", cfg)
	}
	if !cfg.Group {
		t.Error("expected group to be true")
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected log settings: %+v", cfg)
	}
	if cfg.Source != path {
		t.Errorf("expected source %q, got %q", path, cfg.Source)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	isolate(t)
	dir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, AppName), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, AppName, FileName)
	if err := os.WriteFile(path, []byte(`theme = "mono"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("expected theme mono, got %q", cfg.Theme)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `format = "plain"`)
	t.Setenv("TODO_CONFIG", path)
	t.Setenv("TODO_FORMAT", "json")
	t.Setenv("TODO_LOG_LEVEL", "info")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("expected env format json, got %q", cfg.Format)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected env log level info, got %q", cfg.LogLevel)
	}
	if cfg.Source != path {
		t.Errorf("expected source from TODO_CONFIG, got %q", cfg.Source)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit path missing", func(t *testing.T) {
		isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if err == nil {
			t.Fatal("expected error for missing explicit config, got nil")
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		isolate(t)
		_, err := Load(writeConfig(t, `format = `))
		if err == nil {
			t.Fatal("expected parse error, got nil")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		isolate(t)
		_, err := Load(writeConfig(t, "format = \"plain\"\nfile = \"tasks.json\"\n"))
		if err == nil || !strings.Contains(err.Error(), "unknown keys: file") {
			t.Fatalf("expected unknown key error, got %v", err)
		}
	})

	t.Run("invalid enum", func(t *testing.T) {
		isolate(t)
		_, err := Load(writeConfig(t, `color = "sometimes"`))
		if err == nil || !strings.Contains(err.Error(), "invalid color") {
			t.Fatalf("expected invalid color error, got %v", err)
		}
	})
}
