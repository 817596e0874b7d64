package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI        UIConfig
	Translate TranslateConfig
	Secrets   SecretsConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale string
}

// TranslateConfig holds the non-sensitive part of the dictionary settings.
type TranslateConfig struct {
	Engine string
	Lang   string
}

// SecretsConfig locates the credential file.
type SecretsConfig struct {
	Dir string
}

// Path returns the config file location. DICTIONARY_CONFIG overrides the default.
func Path() string {
	if p := os.Getenv("DICTIONARY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "dictionary", "config.toml")
}

// Load reads configuration from path and env. Env var overrides use prefix DICTIONARY_.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	return load(path, true)
}

// LoadFile is Load without env overrides: the values a save must keep.
func LoadFile(path string) (Config, error) {
	return load(path, false)
}

func load(path string, env bool) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.locale", "auto")
	v.SetDefault("translate.engine", "youdao")
	v.SetDefault("translate.lang", "auto")
	v.SetDefault("secrets.dir", "")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	if env {
		v.SetEnvPrefix("DICTIONARY")
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path, creating the config directory if needed.
// Credentials never go through here; see Store.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("translate.engine", cfg.Translate.Engine)
	v.Set("translate.lang", cfg.Translate.Lang)
	v.Set("secrets.dir", cfg.Secrets.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
