package config

import (
	"strings"
	"testing"
)

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadConfig(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("expected missing-credential error, got %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default server address, got %q", cfg.ServerAddress)
	}
	if cfg.ModelID != "gpt-4o" {
		t.Fatalf("expected default model, got %q", cfg.ModelID)
	}
	if cfg.ExportDir != "" {
		t.Fatalf("expected export disabled by default, got %q", cfg.ExportDir)
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("EXPORT_DIR", "/tmp/projects")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerAddress != ":9999" {
		t.Fatalf("expected env override, got %q", cfg.ServerAddress)
	}
	if cfg.ExportDir != "/tmp/projects" {
		t.Fatalf("expected export dir from env, got %q", cfg.ExportDir)
	}
}
