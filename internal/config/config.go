package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config aggregates application configuration values.
type Config struct {
	OutputDir  string
	Generation GenerationConfig
	Logging    LoggingConfig
}

// GenerationConfig controls dataset volumes and seeding.
type GenerationConfig struct {
	Users                  int
	AccountsPerUser        int
	TransactionsPerAccount int
	Payees                 int
	Seed                   int64
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // json|console
}

const (
	defaultOutputDir     = "test_data"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "console"
)

// profile mirrors the optional YAML profile file.
type profile struct {
	OutputDir              string `yaml:"output_dir"`
	Users                  int    `yaml:"users"`
	AccountsPerUser        int    `yaml:"accounts_per_user"`
	TransactionsPerAccount int    `yaml:"transactions_per_account"`
	Payees                 int    `yaml:"payees"`
	Seed                   int64  `yaml:"seed"`
	Logging                struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Load builds configuration from defaults, an optional YAML profile file, and
// environment variables, in increasing precedence. profilePath may be empty.
func Load(profilePath string) (Config, error) {
	cfg := Config{
		OutputDir: defaultOutputDir,
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}

	if profilePath != "" {
		if err := applyProfile(&cfg, profilePath); err != nil {
			return Config{}, err
		}
	}

	cfg.OutputDir = valueOrDefault("FIXTURES_OUTPUT_DIR", cfg.OutputDir)
	cfg.Generation.Users = parseIntWithDefault("FIXTURES_USERS", cfg.Generation.Users)
	cfg.Generation.AccountsPerUser = parseIntWithDefault("FIXTURES_ACCOUNTS_PER_USER", cfg.Generation.AccountsPerUser)
	cfg.Generation.TransactionsPerAccount = parseIntWithDefault("FIXTURES_TRANSACTIONS_PER_ACCOUNT", cfg.Generation.TransactionsPerAccount)
	cfg.Generation.Payees = parseIntWithDefault("FIXTURES_PAYEES", cfg.Generation.Payees)
	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)

	if v := os.Getenv("FIXTURES_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FIXTURES_SEED value %q: %w", v, err)
		}
		cfg.Generation.Seed = seed
	}

	return cfg, nil
}

func applyProfile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile %s: %w", path, err)
	}

	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse profile %s: %w", path, err)
	}

	if p.OutputDir != "" {
		cfg.OutputDir = p.OutputDir
	}
	if p.Users > 0 {
		cfg.Generation.Users = p.Users
	}
	if p.AccountsPerUser > 0 {
		cfg.Generation.AccountsPerUser = p.AccountsPerUser
	}
	if p.TransactionsPerAccount > 0 {
		cfg.Generation.TransactionsPerAccount = p.TransactionsPerAccount
	}
	if p.Payees > 0 {
		cfg.Generation.Payees = p.Payees
	}
	if p.Seed != 0 {
		cfg.Generation.Seed = p.Seed
	}
	if p.Logging.Level != "" {
		cfg.Logging.Level = p.Logging.Level
	}
	if p.Logging.Format != "" {
		cfg.Logging.Format = p.Logging.Format
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
