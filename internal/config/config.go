package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the simulator configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// Seed makes every run reproducible; 0 draws a fresh seed per run.
	Seed         uint64 `env:"SEED"`
	Spins        int    `env:"SPINS" envDefault:"10000" validate:"min=1"`
	PlayerCounts []int  `env:"PLAYER_COUNTS" envDefault:"3,10,25,50,75" envSeparator:"," validate:"min=1,dive,min=0,max=75"`

	Workers      int           `env:"WORKERS" validate:"gte=0"` // 0 means runtime.NumCPU()
	QueueSize    int           `env:"QUEUE_SIZE" envDefault:"64" validate:"min=1"`
	SweepTimeout time.Duration `env:"SWEEP_TIMEOUT" envDefault:"10m"`

	ScenarioFile string        `env:"SCENARIO_FILE"`
	CacheSize    int           `env:"CACHE_SIZE" envDefault:"256" validate:"min=1"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	MetricsAddr      string        `env:"METRICS_ADDR"`
	ProgressInterval time.Duration `env:"PROGRESS_INTERVAL" envDefault:"5s" validate:"gt=0"`
}

// Load reads .env (when present) and then SLOTSIM_* variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrContextValidate, err)
	}
	return nil
}
