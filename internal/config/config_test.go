package config

import (
	"os"
	"strings"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestEnvReader_Defaults(t *testing.T) {
	for _, k := range []string{"TODO_LOG_LEVEL", "TODO_THEME", "TODO_LOCALE", "TODO_FILE", "TODO_GROUP_LABEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := EnvReader{}.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.Theme != "classic" || cfg.File != "todos.json" || cfg.GroupLabel != "Project" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	tag, err := cfg.Language()
	if err != nil || tag != language.Und {
		t.Fatalf("expected und locale; got %v (%v)", tag, err)
	}
}

func TestEnvReader_EnvAndDotEnv(t *testing.T) {
	t.Setenv("TODO_THEME", "neon")
	t.Setenv("TODO_LOCALE", "")
	os.Unsetenv("TODO_LOCALE")

	dotenv := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(dotenv, []byte("TODO_THEME=mono\nTODO_LOCALE=sv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("TODO_LOCALE") })

	cfg, err := EnvReader{DotEnv: dotenv}.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if cfg.Theme != "neon" {
		t.Fatalf("expected process env to win over .env; got %q", cfg.Theme)
	}
	if cfg.Locale != "sv" {
		t.Fatalf("expected locale from .env; got %q", cfg.Locale)
	}
	tag, err := cfg.Language()
	if err != nil || tag != language.Swedish {
		t.Fatalf("expected Swedish; got %v (%v)", tag, err)
	}
}

func TestConfig_BadLocale(t *testing.T) {
	cfg := &Config{Locale: "not a locale!"}
	if _, err := cfg.Language(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEnvReader_DotEnvErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	if _, err := (EnvReader{DotEnv: missing}).Read(); err != nil {
		t.Fatalf("expected a missing .env to be ignored; got %v", err)
	}

	// a directory exists but cannot be read as a dotenv file
	_, err := EnvReader{DotEnv: t.TempDir()}.Read()
	if err == nil {
		t.Fatalf("expected unreadable .env to fail")
	}
	if !strings.HasPrefix(err.Error(), "dotenv: ") {
		t.Fatalf("expected dotenv prefix; got %v", err)
	}
}
