package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultSessionSecret signs session tokens when nothing else is configured
const DefaultSessionSecret = "change-me"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Network   NetworkConfig   `mapstructure:"network"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Session   SessionConfig   `mapstructure:"session"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NetworkConfig holds the simulated round-trip latency per operation
type NetworkConfig struct {
	CreateLatency   time.Duration `mapstructure:"create_latency"`
	BidLatency      time.Duration `mapstructure:"bid_latency"`
	LoginLatency    time.Duration `mapstructure:"login_latency"`
	RegisterLatency time.Duration `mapstructure:"register_latency"`
}

type SchedulerConfig struct {
	Spec string `mapstructure:"spec"`
}

type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type StorageConfig struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("log.level", "info")
	v.SetDefault("network.create_latency", time.Second)
	v.SetDefault("network.bid_latency", 800*time.Millisecond)
	v.SetDefault("network.login_latency", 800*time.Millisecond)
	v.SetDefault("network.register_latency", time.Second)
	v.SetDefault("scheduler.spec", "@every 30s")
	v.SetDefault("session.secret", DefaultSessionSecret)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.file", "identity.json")
	v.SetDefault("seed.enabled", true)
}

func bindEnv(v *viper.Viper) {
	v.AutomaticEnv()

	// Environment variable mappings
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.host", "SERVER_HOST")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("network.create_latency", "NETWORK_CREATE_LATENCY")
	v.BindEnv("network.bid_latency", "NETWORK_BID_LATENCY")
	v.BindEnv("network.login_latency", "NETWORK_LOGIN_LATENCY")
	v.BindEnv("network.register_latency", "NETWORK_REGISTER_LATENCY")
	v.BindEnv("scheduler.spec", "SCHEDULER_SPEC")
	v.BindEnv("session.secret", "SESSION_SECRET")
	v.BindEnv("session.ttl", "SESSION_TTL")
	v.BindEnv("storage.dir", "STORAGE_DIR")
	v.BindEnv("storage.file", "STORAGE_FILE")
	v.BindEnv("seed.enabled", "SEED_ENABLED")
}

// Load reads config.yaml from the usual locations if present, then applies
// environment overrides on top of the defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/auction-house/")

	bindEnv(v)

	// Read configuration file (optional - will use defaults/env vars if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", configPath, err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if config.Session.TTL <= 0 {
		return nil, fmt.Errorf("config: session.ttl must be positive, got %s", config.Session.TTL)
	}
	return &config, nil
}

// UsesDefaultSecret reports whether session tokens are signed with the built-in secret
func (c *Config) UsesDefaultSecret() bool {
	return c.Session.Secret == DefaultSessionSecret
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetConfigString returns a formatted string representation of the config
func (c *Config) GetConfigString() string {
	return fmt.Sprintf(
		"Server: %s, Log: %s, Scheduler: %s, Storage: %s/%s, Seed: %t",
		c.Addr(),
		c.Log.Level,
		c.Scheduler.Spec,
		c.Storage.Dir,
		c.Storage.File,
		c.Seed.Enabled,
	)
}
