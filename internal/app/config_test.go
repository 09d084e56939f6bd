package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-step", "50", "-battle", "-theme", "light"}); err != nil {
		t.Fatal(err)
	}
	if cfg.StepMillis != 50 || !cfg.Battle || cfg.Theme != "light" {
		t.Fatalf("parsed config = %+v", cfg)
	}
	if cfg.StepInterval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", cfg.StepInterval())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"step_millis": 33, "battle": true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.StepMillis != 33 || !cfg.Battle {
		t.Fatalf("loaded config = %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Width != 1024 {
		t.Fatalf("width = %d, want default 1024", cfg.Width)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file must error")
	}
}
