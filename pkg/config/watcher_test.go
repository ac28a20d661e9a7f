package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Default().Save(path); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if got := w.Current(); got.Output != OutputCalendar {
		t.Fatalf("initial Current().Output = %q, want calendar", got.Output)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(path, []byte("output: julian\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		if cfg.Output != OutputJulian {
			t.Errorf("reloaded Output = %q, want julian", cfg.Output)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the config reload")
	}

	if got := w.Current(); got.Output != OutputJulian {
		t.Errorf("Current().Output = %q, want julian", got.Output)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

func TestWatcherBadInitialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: sundial\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWatcher(path, nil, nil); err == nil {
		t.Error("NewWatcher with an invalid config succeeded, want error")
	}
}

func TestWatcherKeepsLastGoodConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Default().Save(path); err != nil {
		t.Fatal(err)
	}

	failed := make(chan error, 1)
	w, err := NewWatcher(path, nil, func(err error) {
		select {
		case failed <- err:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(path, []byte("output: sundial\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-failed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the reload failure")
	}

	if got := w.Current(); got.Output != OutputCalendar {
		t.Errorf("Current().Output = %q, want the last good value", got.Output)
	}
}
