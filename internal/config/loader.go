package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileEnv names the variable pointing at an optional YAML file.
const ConfigFileEnv = "CONFIG_FILE"

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. YAML file named by CONFIG_FILE, if set
//  3. environment variables (PORT, DATABASE_URL, ...)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// Keys are flat, so the delimiter never matches inside an env name.
	envProvider := env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg.EmailProvider = strings.ToLower(strings.TrimSpace(cfg.EmailProvider))
	// The SMTP account doubles as the sender unless told otherwise.
	if cfg.EmailProvider == EmailProviderSMTP && cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.EmailUser
	}
	if cfg.EmailProvider == EmailProviderLog && cfg.EmailFrom == "" {
		cfg.EmailFrom = "DNF Ocupacional <no-reply@localhost>"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
