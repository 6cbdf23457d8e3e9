package lingo

import (
	"context"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment driven settings for assembling a registry.
type Config struct {
	Languages       string `env:"TRANSLATION_LANGUAGES" envDefault:"en"           yaml:"translation_languages"`
	TranslationsDir string `env:"TRANSLATION_DIR"       envDefault:"localization" yaml:"translation_dir"`
	LogLevel        string `env:"LOG_LEVEL"             envDefault:"info"         yaml:"log_level"`
}

// SupportedLanguages splits the configured comma separated language codes.
func (c Config) SupportedLanguages() []string {
	return splitCodes(c.Languages)
}

// LoggingLevel returns the configured log level.
func (c Config) LoggingLevel() string {
	return c.LogLevel
}

// FromEnv convenience method to process configs.
func FromEnv() (Config, error) {
	return env.ParseAs[Config]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// NewFromConfig loads the message files named by cfg and builds a registry
// over them. The first configured language becomes the current one.
func NewFromConfig(ctx context.Context, cfg Config) (*Registry, error) {
	languages := cfg.SupportedLanguages()

	table, err := LoadDirectory(ctx, cfg.TranslationsDir, languages...)
	if err != nil {
		return nil, err
	}

	return New(languages, table)
}
