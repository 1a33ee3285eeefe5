package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	LogLevel   string `env:"TODO_LOG_LEVEL" env-default:"warn"`
	Theme      string `env:"TODO_THEME" env-default:"classic"`
	Locale     string `env:"TODO_LOCALE" env-default:"und"`
	File       string `env:"TODO_FILE" env-default:"todos.json"`
	GroupLabel string `env:"TODO_GROUP_LABEL" env-default:"Project"`
}

// Language parses Locale as a BCP 47 tag.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

type Reader interface {
	Read() (*Config, error)
}

// EnvReader reads the process environment, after merging an optional dotenv file.
type EnvReader struct {
	DotEnv string
}

func NewEnvReader() EnvReader {
	return EnvReader{DotEnv: ".env"}
}

func (r EnvReader) Read() (*Config, error) {
	if r.DotEnv != "" {
		// a missing .env is normal; existing variables are never overridden
		if err := godotenv.Load(r.DotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("dotenv: %w", err)
		}
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
