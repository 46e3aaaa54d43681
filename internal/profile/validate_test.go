package profile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matheus3301/estate/internal/config"
)

func TestValidateName(t *testing.T) {
	valid := []string{"main", DefaultProfileName, "2024", "work123", "my-profile", "my_profile", "a", strings.Repeat("a", 64)}
	invalid := []string{"", "Main", "my profile", "my.profile", strings.Repeat("a", 65), "my@profile", "my/profile", "..", "~main"}

	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	SetBaseDir(t.TempDir())
	t.Cleanup(func() { SetBaseDir("") })

	t.Setenv(config.EnvProfile, "")
	if got := Resolve(""); got != DefaultProfileName {
		t.Errorf("Resolve() with nothing set = %q, want %q", got, DefaultProfileName)
	}

	if err := config.Save(ConfigPath(), &config.Config{DefaultProfile: "fromfile"}); err != nil {
		t.Fatal(err)
	}
	if got := Resolve(""); got != "fromfile" {
		t.Errorf("Resolve() with config = %q, want fromfile", got)
	}

	t.Setenv(config.EnvProfile, "fromenv")
	if got := Resolve(""); got != "fromenv" {
		t.Errorf("Resolve() with env = %q, want fromenv", got)
	}
	if got := Resolve("fromflag"); got != "fromflag" {
		t.Errorf("Resolve(flag) = %q, want fromflag", got)
	}
	if filepath.Dir(ConfigPath()) != BaseDir() {
		t.Errorf("config %s not under %s", ConfigPath(), BaseDir())
	}
}
