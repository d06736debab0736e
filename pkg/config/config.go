package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var GlobalConfig *Config

// Config global configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	Logger LoggerConfig `yaml:"logger"`
	Redis  RedisConfig  `yaml:"redis"`
	Events EventsConfig `yaml:"events"`
	Auth   AuthConfig   `yaml:"auth"`
}

// ServerConfig server configuration
type ServerConfig struct {
	Port    int    `yaml:"port"`
	Mode    string `yaml:"mode"`    // debug, release, test
	Service string `yaml:"service"` // service name reported by /health
	Version string `yaml:"version"`
}

// CORSConfig cross-origin configuration for the front-end dev servers
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggerConfig logger configuration
type LoggerConfig struct {
	Level  string           `yaml:"level"`  // debug, info, warn, error
	Output string           `yaml:"output"` // console, file, both
	File   LoggerFileConfig `yaml:"file"`
}

// LoggerFileConfig logger file configuration
type LoggerFileConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig Redis configuration (empty addr disables redis)
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"` // pub/sub channel for the event stream
}

// Enabled reports whether a redis server is configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// EventsConfig event stream configuration
type EventsConfig struct {
	MetricsInterval int `yaml:"metrics_interval"` // seconds between metrics_updated events
	Buffer          int `yaml:"buffer"`           // per-subscriber channel size
}

// AuthConfig mock auth configuration
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"`
	TokenTTL    int    `yaml:"token_ttl"` // seconds
	EmailDomain string `yaml:"email_domain"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8001,
			Mode:    "debug",
			Service: "BitingLip Mock API",
			Version: "1.0.0",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3001", "http://localhost:3000"},
		},
		Logger: LoggerConfig{
			Level:  "info",
			Output: "console",
			File:   LoggerFileConfig{Path: "logs/bitinglip.log"},
		},
		Redis: RedisConfig{
			Channel: "bitinglip:events",
		},
		Events: EventsConfig{
			MetricsInterval: 5,
			Buffer:          64,
		},
		Auth: AuthConfig{
			JWTSecret:   "bitinglip-mock-secret",
			TokenTTL:    3600,
			EmailDomain: "bitinglip.dev",
		},
	}
}

// Init initializes configuration
func Init() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		return err
	}

	GlobalConfig = cfg
	return nil
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error: the mock must start with zero setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	validateAndApplyDefaults(cfg)
	return cfg, nil
}

// validateAndApplyDefaults replaces out-of-range values with defaults
func validateAndApplyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		cfg.Server.Port = defaults.Server.Port
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		cfg.Server.Mode = defaults.Server.Mode
	}
	if cfg.Server.Service == "" {
		cfg.Server.Service = defaults.Server.Service
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = defaults.Server.Version
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = defaults.CORS.AllowedOrigins
	}
	if cfg.Logger.Output == "file" || cfg.Logger.Output == "both" {
		if cfg.Logger.File.Path == "" {
			cfg.Logger.File.Path = defaults.Logger.File.Path
		}
	}
	if cfg.Redis.Channel == "" {
		cfg.Redis.Channel = defaults.Redis.Channel
	}
	if cfg.Events.MetricsInterval <= 0 {
		cfg.Events.MetricsInterval = defaults.Events.MetricsInterval
	}
	if cfg.Events.Buffer <= 0 {
		cfg.Events.Buffer = defaults.Events.Buffer
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = defaults.Auth.JWTSecret
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaults.Auth.TokenTTL
	}
	if cfg.Auth.EmailDomain == "" {
		cfg.Auth.EmailDomain = defaults.Auth.EmailDomain
	}
}
