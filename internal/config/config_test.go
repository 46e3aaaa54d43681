package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{
		DefaultProfile: "work",
		APIBaseURL:     "http://example.test/api",
		RequestTimeout: Duration{3 * time.Second},
		User:           User{ID: "u1", Name: "Asha"},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", loaded.DefaultProfile, "work")
	}
	if loaded.RequestTimeout.Duration != 3*time.Second {
		t.Errorf("RequestTimeout = %v, want 3s", loaded.RequestTimeout.Duration)
	}
	if loaded.User.Name != "Asha" {
		t.Errorf("User.Name = %q, want Asha", loaded.User.Name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvStoreBackend, "")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want %q", cfg.APIBaseURL, DefaultAPIBaseURL)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendSQLite)
	}
	if cfg.RequestTimeout.Duration != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout.Duration, DefaultRequestTimeout)
	}
	if cfg.AvatarPlaceholder != DefaultAvatarPlaceholder {
		t.Errorf("AvatarPlaceholder = %q", cfg.AvatarPlaceholder)
	}
}

func TestLoadOrDefaultEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(path, &Config{APIBaseURL: "http://file.test/api", Currency: "$"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIURL, "http://env.test/api")
	t.Setenv(EnvStoreBackend, BackendJSON)
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBaseURL != "http://env.test/api" {
		t.Errorf("APIBaseURL = %q, want env override", cfg.APIBaseURL)
	}
	if cfg.StoreBackend != BackendJSON {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendJSON)
	}
	if cfg.Currency != "$" {
		t.Errorf("Currency = %q, want $ (from file)", cfg.Currency)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadOrDefaultRejectsUnknownBackend(t *testing.T) {
	t.Setenv(EnvStoreBackend, "mongo")
	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("LoadOrDefault() should reject unknown backend")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("ESTATE_TEST_DOTENV=from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ESTATE_TEST_DOTENV", "")
	_ = os.Unsetenv("ESTATE_TEST_DOTENV")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), envPath); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("ESTATE_TEST_DOTENV"); got != "from-file" {
		t.Errorf("ESTATE_TEST_DOTENV = %q, want from-file", got)
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{DefaultProfile: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
