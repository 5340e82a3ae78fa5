package config

import "testing"

func TestNew_Defaults(t *testing.T) {
	t.Setenv("TASK_TRACKER_FILE", "")
	t.Setenv("TASK_TRACKER_DEBUG", "")
	t.Setenv("TASK_TRACKER_QUIET", "")

	cfg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorePath != DefaultStoreFile {
		t.Errorf("expected %q, got %q", DefaultStoreFile, cfg.StorePath)
	}
	if cfg.Debug || cfg.Quiet {
		t.Errorf("expected debug and quiet off, got %+v", cfg)
	}
	if cfg.Logger == nil {
		t.Error("expected a logger")
	}
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("TASK_TRACKER_FILE", "/tmp/work.json")
	t.Setenv("TASK_TRACKER_DEBUG", "true")
	t.Setenv("TASK_TRACKER_QUIET", "1")

	cfg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorePath != "/tmp/work.json" {
		t.Errorf("expected env path, got %q", cfg.StorePath)
	}
	if !cfg.Debug || !cfg.Quiet {
		t.Errorf("expected debug and quiet on, got %+v", cfg)
	}
}

func TestNew_FlagBeatsEnv(t *testing.T) {
	t.Setenv("TASK_TRACKER_FILE", "/tmp/env.json")

	cfg, err := New("flag.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorePath != "flag.json" {
		t.Errorf("expected flag path, got %q", cfg.StorePath)
	}
}

func TestNew_BlankPath(t *testing.T) {
	if _, err := New("   "); err == nil {
		t.Error("expected error for blank path")
	}
}
