package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENGINE_DEPTH", "")
	t.Setenv("ENGINE_MAX_DEPTH", "")
	t.Setenv("AUTH_ENABLED", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Engine.Depth != 3 || cfg.Engine.MaxDepth != 5 {
		t.Fatalf("expected default depths 3/5, got %d/%d", cfg.Engine.Depth, cfg.Engine.MaxDepth)
	}
	if cfg.Auth.Enabled {
		t.Fatalf("auth should default to disabled")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENGINE_DEPTH", "4")
	t.Setenv("ENGINE_MAX_DEPTH", "6")
	t.Setenv("AUTH_ENABLED", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Port != "9999" {
		t.Fatalf("expected port 9999, got %q", cfg.Port)
	}
	if cfg.Engine.Depth != 4 || cfg.Engine.MaxDepth != 6 {
		t.Fatalf("expected depths 4/6, got %d/%d", cfg.Engine.Depth, cfg.Engine.MaxDepth)
	}
	if !cfg.Auth.Enabled {
		t.Fatalf("expected auth enabled")
	}
}

func TestLoadConfigRejectsBadInts(t *testing.T) {
	t.Setenv("ENGINE_DEPTH", "banana")
	t.Setenv("ENGINE_MAX_DEPTH", "-2")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Engine.Depth != 3 || cfg.Engine.MaxDepth != 5 {
		t.Fatalf("bad values should fall back to defaults, got %d/%d", cfg.Engine.Depth, cfg.Engine.MaxDepth)
	}
}
