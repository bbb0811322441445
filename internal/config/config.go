// Package config loads server configuration from environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Site    SiteConfig
	Admin   AdminConfig
	AI      AIConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type GeminiConfig struct {
	Model string
	Keys  []string
}

type StorageConfig struct {
	DataDir string
}

type SiteConfig struct {
	FrontendURL string
}

type AdminConfig struct {
	Token string
}

type AIConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4000,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Site: SiteConfig{
			FrontendURL: "http://localhost:3000",
		},
		AI: AIConfig{
			SessionTTL:    30 * time.Minute,
			SweepInterval: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from ACNS_* environment variables on top of the
// defaults. Gemini keys come from GEMINI_API_KEYS (comma separated) or the
// numbered GEMINI_KEY_1..GEMINI_KEY_10 variables. A configuration with no
// Gemini keys is valid; the AI endpoints report themselves unconfigured.
func Load() (Config, error) {
	cfg := defaults()
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Gemini.Keys = geminiKeysFromEnv()
	return cfg, nil
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "acns")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "acns")
}
