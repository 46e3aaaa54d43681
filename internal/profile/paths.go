package profile

import (
	"os"
	"path/filepath"
)

// baseDirOverride is set by tests.
var baseDirOverride string

// SetBaseDir overrides ~/.estate. An empty value restores the default.
func SetBaseDir(dir string) {
	baseDirOverride = dir
}

// BaseDir returns ~/.estate.
func BaseDir() string {
	if baseDirOverride != "" {
		return baseDirOverride
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".estate")
}

// Dir returns the profile-specific directory.
func Dir(name string) string {
	return filepath.Join(BaseDir(), "profiles", name)
}

// StoreDBPath returns the SQLite collection store path.
func StoreDBPath(name string) string {
	return filepath.Join(Dir(name), "estate.db")
}

// CollectionsDir returns the directory used by the JSON-file backend.
func CollectionsDir(name string) string {
	return filepath.Join(Dir(name), "collections")
}

// LogDir returns the log directory for a profile.
func LogDir(name string) string {
	return filepath.Join(Dir(name), "logs")
}

// LogPath returns the client log file path.
func LogPath(name string) string {
	return filepath.Join(LogDir(name), "estate.log")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// DotEnvPath returns the global .env file path.
func DotEnvPath() string {
	return filepath.Join(BaseDir(), ".env")
}

// EnsureDir creates the profile directory tree with proper permissions.
func EnsureDir(name string) error {
	dirs := []string{
		Dir(name),
		LogDir(name),
		CollectionsDir(name),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
