package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultConfigFile is read when no other file is set
const DefaultConfigFile = "./config/settings.yaml"

var (
	once       sync.Once
	initErr    error
	configFile = DefaultConfigFile
)

// SetFile overrides the config file location. Call before Init.
func SetFile(path string) {
	if path != "" {
		configFile = path
	}
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = Load()
	})
	return initErr
}

// Load reads defaults, the config file and PODCASTR_* environment overrides
// into viper and validates the result
func Load() error {
	setDefaults()

	viper.SetEnvPrefix("PODCASTR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	path := filepath.Clean(configFile)
	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file means defaults and env vars only
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// File returns the config file in use
func File() string {
	return viper.ConfigFileUsed()
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Validate checks a Config and fills in corrections for soft errors
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	base, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("invalid upstream base_url: %q", c.Upstream.BaseURL)
	}

	switch c.Cache.Driver {
	case "memory":
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("cache driver sqlite requires database.path")
		}
	default:
		return fmt.Errorf("unknown cache driver: %q", c.Cache.Driver)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %w", err)
	}

	if c.Cache.Revalidate <= 0 {
		c.Cache.Revalidate = 24 * time.Hour
	}

	if c.Site.StaticPathsLimit <= 0 {
		c.Site.StaticPathsLimit = 2
	}

	return nil
}

// Location returns the time zone publish dates are rendered in
func (c *Config) Location() (*time.Location, error) {
	if c.Site.Timezone == "" || c.Site.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Site.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid site timezone %q: %w", c.Site.Timezone, err)
	}
	return loc, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Episodes API defaults
	viper.SetDefault("upstream.base_url", "http://localhost:3333")
	viper.SetDefault("upstream.timeout", 10*time.Second)
	viper.SetDefault("upstream.user_agent", "Podcastr/1.0")
	viper.SetDefault("upstream.rate_limit", 10)
	viper.SetDefault("upstream.burst", 20)

	// Site defaults
	viper.SetDefault("site.name", "Podcastr")
	viper.SetDefault("site.url", "https://nlw5.vercel.app/")
	viper.SetDefault("site.locale", "pt_BR")
	viper.SetDefault("site.timezone", "Local")
	viper.SetDefault("site.static_paths_limit", 2)

	// Page cache defaults
	viper.SetDefault("cache.driver", "memory")
	viper.SetDefault("cache.revalidate", 24*time.Hour)
	viper.SetDefault("cache.memory.max_size_mb", 64)
	viper.SetDefault("cache.memory.sweep_interval", 5*time.Minute)

	// Database defaults
	viper.SetDefault("database.path", "./data/pages.db")
	viper.SetDefault("database.verbose", false)

	// Player defaults
	viper.SetDefault("player.history_size", 20)

	// Export defaults
	viper.SetDefault("export.out_dir", "./out")

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.max_body_bytes", 1048576)
	viper.SetDefault("security.rate_limiting.enabled", true)
	viper.SetDefault("security.rate_limiting.rps", 10)
	viper.SetDefault("security.rate_limiting.burst", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
