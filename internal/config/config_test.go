package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	cfg := Default("/tmp/project")
	v := NewValidator()
	if err := v.ValidateAndSetDefaults(cfg); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Server.Mode != ServerModeStdio {
		t.Fatalf("expected stdio default, got %s", cfg.Server.Mode)
	}
	if !cfg.Languages["go"].Enabled {
		t.Fatal("expected go language enabled by default")
	}
}

func TestValidatorRejectsEmptyRoot(t *testing.T) {
	cfg := Default("")
	cfg.WorkspaceRoot = ""
	if err := NewValidator().ValidateAndSetDefaults(cfg); err == nil {
		t.Fatal("expected error for empty workspace root")
	}
}

func TestLoadKDLMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadKDL(dir)
	if err != nil {
		t.Fatalf("missing .codewalk.kdl should not error: %v", err)
	}
	if cfg.WorkspaceRoot != dir {
		t.Fatalf("expected workspace root %s, got %s", dir, cfg.WorkspaceRoot)
	}
}
