package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL        = "http://localhost:3000/api"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultCurrency          = "Rs."
	DefaultLocale            = "en-IN"
	DefaultAvatarPlaceholder = "https://freesvg.org/img/abstract-user-flat-4.png"
	DefaultLogLevel          = "info"

	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Environment variables that override values from config.toml.
const (
	EnvAPIURL       = "ESTATE_API_URL"
	EnvProfile      = "ESTATE_PROFILE"
	EnvStoreBackend = "ESTATE_STORE_BACKEND"
	EnvLogLevel     = "ESTATE_LOG_LEVEL"
)

// Config represents the global ~/.estate/config.toml.
type Config struct {
	DefaultProfile    string   `toml:"default_profile"`
	APIBaseURL        string   `toml:"api_base_url"`
	RequestTimeout    Duration `toml:"request_timeout"`
	StoreBackend      string   `toml:"store_backend"`
	Currency          string   `toml:"currency"`
	Locale            string   `toml:"locale"`
	AvatarPlaceholder string   `toml:"avatar_placeholder"`
	LogLevel          string   `toml:"log_level"`
	User              User     `toml:"user"`
}

// User is the signed-in identity used as review author.
type User struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Avatar string `toml:"avatar"`
}

// Duration decodes TOML strings like "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns a config with every field populated.
func Default() *Config {
	return &Config{
		APIBaseURL:        DefaultAPIBaseURL,
		RequestTimeout:    Duration{DefaultRequestTimeout},
		StoreBackend:      BackendSQLite,
		Currency:          DefaultCurrency,
		Locale:            DefaultLocale,
		AvatarPlaceholder: DefaultAvatarPlaceholder,
		LogLevel:          DefaultLogLevel,
	}
}

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault reads the config at path, fills unset fields with defaults and
// applies environment overrides. A missing file is not an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = &Config{}
	}
	cfg.fillDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.APIBaseURL == "" {
		c.APIBaseURL = def.APIBaseURL
	}
	if c.RequestTimeout.Duration <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	if c.StoreBackend == "" {
		c.StoreBackend = def.StoreBackend
	}
	if c.Currency == "" {
		c.Currency = def.Currency
	}
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.AvatarPlaceholder == "" {
		c.AvatarPlaceholder = def.AvatarPlaceholder
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvStoreBackend); v != "" {
		c.StoreBackend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	switch c.StoreBackend {
	case BackendSQLite, BackendJSON:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)", c.StoreBackend, BackendSQLite, BackendJSON)
	}
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
