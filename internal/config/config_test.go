package config

import (
	"fmt"
	"testing"
	"time"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEYS", "")
	for i := 1; i <= maxNumberedKeys; i++ {
		t.Setenv(fmt.Sprintf("GEMINI_KEY_%d", i), "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ACNS_SERVER_PORT", "")
	t.Setenv("ACNS_GEMINI_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("Port = %d, want 4000", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.Gemini.Model)
	}
	if cfg.AI.SessionTTL != 30*time.Minute || cfg.AI.SweepInterval != 10*time.Minute {
		t.Errorf("AI timings = %v/%v", cfg.AI.SessionTTL, cfg.AI.SweepInterval)
	}
	if len(cfg.Gemini.Keys) != 0 {
		t.Errorf("Keys = %v, want none", cfg.Gemini.Keys)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ACNS_SERVER_PORT", "8080")
	t.Setenv("ACNS_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("ACNS_FRONTEND_URL", "https://acns.tech")
	t.Setenv("ACNS_ADMIN_TOKEN", "secret")
	t.Setenv("ACNS_AI_SESSION_TTL", "45m")
	t.Setenv("ACNS_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q", cfg.Gemini.Model)
	}
	if cfg.Site.FrontendURL != "https://acns.tech" {
		t.Errorf("FrontendURL = %q", cfg.Site.FrontendURL)
	}
	if cfg.Admin.Token != "secret" {
		t.Errorf("Token = %q", cfg.Admin.Token)
	}
	if cfg.AI.SessionTTL != 45*time.Minute {
		t.Errorf("SessionTTL = %v, want 45m", cfg.AI.SessionTTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log level = %q", cfg.Log.Level)
	}
}

func TestEnvOverrideParseError(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ACNS_SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestGeminiKeysCSV(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEYS", "k1, k2 ,,k3")

	keys := geminiKeysFromEnv()
	if len(keys) != 3 || keys[0] != "k1" || keys[1] != "k2" || keys[2] != "k3" {
		t.Errorf("keys = %v, want [k1 k2 k3]", keys)
	}
}

func TestGeminiKeysNumbered(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_KEY_1", "first")
	t.Setenv("GEMINI_KEY_3", "third")

	keys := geminiKeysFromEnv()
	if len(keys) != 2 || keys[0] != "first" || keys[1] != "third" {
		t.Errorf("keys = %v, want gaps skipped in order", keys)
	}
}

func TestGeminiKeysCSVTakesPrecedence(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEYS", "csv-key")
	t.Setenv("GEMINI_KEY_1", "numbered-key")

	keys := geminiKeysFromEnv()
	if len(keys) != 1 || keys[0] != "csv-key" {
		t.Errorf("keys = %v, want csv form to win", keys)
	}
}
