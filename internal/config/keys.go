package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type keyType int

const (
	kString keyType = iota
	kInt
	kDuration
)

type keySpec struct {
	env   string
	typ   keyType
	apply func(cfg *Config, v any)
}

var specs = []keySpec{
	{
		env: "ACNS_SERVER_PORT", typ: kInt,
		apply: func(cfg *Config, v any) { cfg.Server.Port = v.(int) },
	},
	{
		env: "ACNS_GEMINI_MODEL", typ: kString,
		apply: func(cfg *Config, v any) { cfg.Gemini.Model = v.(string) },
	},
	{
		env: "ACNS_STORAGE_DATA_DIR", typ: kString,
		apply: func(cfg *Config, v any) { cfg.Storage.DataDir = v.(string) },
	},
	{
		env: "ACNS_FRONTEND_URL", typ: kString,
		apply: func(cfg *Config, v any) { cfg.Site.FrontendURL = v.(string) },
	},
	{
		env: "ACNS_ADMIN_TOKEN", typ: kString,
		apply: func(cfg *Config, v any) { cfg.Admin.Token = v.(string) },
	},
	{
		env: "ACNS_AI_SESSION_TTL", typ: kDuration,
		apply: func(cfg *Config, v any) { cfg.AI.SessionTTL = v.(time.Duration) },
	},
	{
		env: "ACNS_AI_SWEEP_INTERVAL", typ: kDuration,
		apply: func(cfg *Config, v any) { cfg.AI.SweepInterval = v.(time.Duration) },
	},
	{
		env: "ACNS_LOG_LEVEL", typ: kString,
		apply: func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
	},
}

func applyEnvOverrides(cfg *Config) error {
	for _, s := range specs {
		raw, ok := os.LookupEnv(s.env)
		if !ok || raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", s.env, err)
			}
			s.apply(cfg, v)
		case kDuration:
			v, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", s.env, err)
			}
			s.apply(cfg, v)
		}
	}
	return nil
}

const maxNumberedKeys = 10

// geminiKeysFromEnv collects API keys. GEMINI_API_KEYS takes precedence;
// otherwise the numbered GEMINI_KEY_1..GEMINI_KEY_10 variables are read in
// order, skipping blanks.
func geminiKeysFromEnv() []string {
	if csv := os.Getenv("GEMINI_API_KEYS"); csv != "" {
		var keys []string
		for _, k := range strings.Split(csv, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return keys
	}

	var keys []string
	for i := 1; i <= maxNumberedKeys; i++ {
		if k := strings.TrimSpace(os.Getenv(fmt.Sprintf("GEMINI_KEY_%d", i))); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
