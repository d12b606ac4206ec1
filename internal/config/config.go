package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	Log    LogConfig
	Nav    NavConfig
}

// ServerConfig holds document server settings.
type ServerConfig struct {
	Addr string
	Root string
}

// CacheConfig holds the sqlite document cache settings.
type CacheConfig struct {
	Path string
}

// LogConfig holds logger settings. File receives TUI logs since the
// terminal belongs to the UI.
type LogConfig struct {
	Level string
	File  string
}

// NavConfig points at the navigator manifest. Navigator picks the mounted
// navigator; empty means the first one.
type NavConfig struct {
	Manifest  string
	Navigator string
	BaseURL   string `mapstructure:"base_url"`
}

// Load reads configuration from file and env. Env var overrides use prefix HYPERTABS_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("server.addr", "127.0.0.1:8085")
	v.SetDefault("server.root", "")
	v.SetDefault("cache.path", filepath.Join(home, ".local", "share", "hypertabs", "documents.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "hypertabs", "hypertabs.log"))
	v.SetDefault("nav.manifest", "")
	v.SetDefault("nav.navigator", "")
	v.SetDefault("nav.base_url", "http://127.0.0.1:8085")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HYPERTABS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "hypertabs"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HYPERTABS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the default config file is optional; an explicit one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
