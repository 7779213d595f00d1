package mode

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("indent_offset = 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	type result struct {
		cfg Config
		err error
	}
	got := make(chan result, 16)
	stop, err := Watch(path, func(cfg Config, err error) { got <- result{cfg, err} })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(path, []byte("indent_offset = 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-got:
			if r.err == nil && r.cfg.IndentOffset == 4 {
				return
			}
		case <-deadline:
			t.Fatalf("no reload with indent_offset = 4")
		}
	}
}

func TestWatch_StopIsIdempotent(t *testing.T) {
	stop, err := Watch(filepath.Join(t.TempDir(), ConfigFileName), func(Config, error) {})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", ConfigFileName), func(Config, error) {})
	if err == nil {
		t.Fatalf("expected error for a missing directory")
	}
}
