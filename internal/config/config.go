package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Fallback defaults let a fresh checkout run against the shared dev project
// without any environment at all. Prod-like environments must override them.
const (
	defaultRemoteURL = "https://dev-project.gigmarket.example"
	defaultAnonKey   = "public-anon-key-dev"
)

type Config struct {
	AppEnv    string `env:"APP_ENV, default=dev"`
	Port      string `env:"PORT, default=8080"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// Remote data service coordinates.
	RemoteURL string `env:"REMOTE_URL"`
	AnonKey   string `env:"REMOTE_ANON_KEY"`

	// Device-local store DSN. SQLite path by default, postgres:// when the
	// gateway runs hosted.
	LocalDSN string `env:"LOCAL_DSN, default=gigmarket.db"`

	RealtimeURL string `env:"REALTIME_URL"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.RemoteURL) == "" {
		cfg.RemoteURL = defaultRemoteURL
	}
	if strings.TrimSpace(cfg.AnonKey) == "" {
		cfg.AnonKey = defaultAnonKey
	}
	cfg.RemoteURL = strings.TrimRight(cfg.RemoteURL, "/")
	if cfg.RealtimeURL == "" {
		cfg.RealtimeURL = strings.Replace(cfg.RemoteURL, "https://", "wss://", 1) + "/realtime/v1"
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if isProdLike(cfg.AppEnv) {
		if cfg.RemoteURL == defaultRemoteURL {
			return fmt.Errorf("in prod/release REMOTE_URL must be set and not default")
		}
		if cfg.AnonKey == defaultAnonKey {
			return fmt.Errorf("in prod/release REMOTE_ANON_KEY must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}
