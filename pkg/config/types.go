package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Upstream    UpstreamConfig `mapstructure:"upstream"`
	Site        SiteConfig     `mapstructure:"site"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Database    DatabaseConfig `mapstructure:"database"`
	Player      PlayerConfig   `mapstructure:"player"`
	Export      ExportConfig   `mapstructure:"export"`
	Security    SecurityConfig `mapstructure:"security"`
	Logging     LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// UpstreamConfig contains episodes API settings
type UpstreamConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	RateLimit int           `mapstructure:"rate_limit"`
	Burst     int           `mapstructure:"burst"`
}

// SiteConfig contains the identity pages are rendered with
type SiteConfig struct {
	Name             string `mapstructure:"name"`
	URL              string `mapstructure:"url"`
	Locale           string `mapstructure:"locale"`
	Timezone         string `mapstructure:"timezone"`
	StaticPathsLimit int    `mapstructure:"static_paths_limit"`
}

// CacheConfig contains generated page cache settings
type CacheConfig struct {
	Driver     string            `mapstructure:"driver"` // memory | sqlite
	Revalidate time.Duration     `mapstructure:"revalidate"`
	Memory     MemoryCacheConfig `mapstructure:"memory"`
}

// MemoryCacheConfig contains in-memory cache settings
type MemoryCacheConfig struct {
	MaxSizeMB     int64         `mapstructure:"max_size_mb"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// PlayerConfig contains playback session settings
type PlayerConfig struct {
	HistorySize int `mapstructure:"history_size"`
}

// ExportConfig contains static export settings
type ExportConfig struct {
	OutDir string `mapstructure:"out_dir"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS   bool            `mapstructure:"enable_cors"`
	CORSOrigins  []string        `mapstructure:"cors_origins"`
	MaxBodyBytes int64           `mapstructure:"max_body_bytes"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}
