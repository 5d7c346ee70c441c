// Package config loads application configuration from an optional .env
// file, an optional YAML file under configs/ and WORDCARDS_* environment
// variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "WORDCARDS"

// DefaultPronounceURL is a free dictionary endpoint returning audio links.
const DefaultPronounceURL = "https://api.dictionaryapi.dev/api/v2/entries/en/{text}"

type Config struct {
	Env       string          `mapstructure:"env" validate:"oneof=development production"`
	DBPath    string          `mapstructure:"db_path"`
	Log       LogConfig       `mapstructure:"log"`
	Source    SourceConfig    `mapstructure:"source"`
	Pronounce PronounceConfig `mapstructure:"pronounce"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// SourceConfig selects where datasets are fetched from. Dir wins over
// URL; with neither set the built-in datasets are used.
type SourceConfig struct {
	Dir     string        `mapstructure:"dir"`
	URL     string        `mapstructure:"url" validate:"omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type PronounceConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("db_path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("source.dir", "")
	v.SetDefault("source.url", "")
	v.SetDefault("source.timeout", 10*time.Second)
	v.SetDefault("pronounce.enabled", true)
	v.SetDefault("pronounce.url", DefaultPronounceURL)
	v.SetDefault("pronounce.timeout", 5*time.Second)
}

// Init loads the config named by CONFIG_NAME (default "default") from
// the configs directory.
func Init() (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	name := os.Getenv("CONFIG_NAME")
	if name == "" {
		name = "default"
	}
	return Load(name, "configs")
}

// Load reads the config file name from paths, if one exists, then applies
// environment overrides and validates the result.
func Load(name string, paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("db_path", EnvPrefix+"_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_DB: %w", EnvPrefix, err)
	}

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(name)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Development reports whether the config selects the development environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}
