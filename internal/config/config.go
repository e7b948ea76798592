package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the client.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Socket SocketConfig `yaml:"socket"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig points at the DevTinder REST backend.
type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	RequestTimeout int    `yaml:"request_timeout_seconds"`
}

// SocketConfig drives the realtime connection and its reconnect policy.
type SocketConfig struct {
	URL               string `yaml:"url"`
	ReconnectAttempts int    `yaml:"reconnect_attempts"`
	ReconnectDelayMS  int    `yaml:"reconnect_delay_ms"`
	HandshakeTimeout  int    `yaml:"handshake_timeout_seconds"`
	HealthIntervalSec int    `yaml:"health_interval_seconds"`
}

// AuthConfig drives the pre-login auth check.
type AuthConfig struct {
	CheckTimeoutSec  int `yaml:"check_timeout_seconds"`
	CheckThrottleMin int `yaml:"check_throttle_minutes"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is present.
// The reconnect numbers match what the backend expects from web clients.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://localhost:7777",
			RequestTimeout: 15,
		},
		Socket: SocketConfig{
			URL:               "ws://localhost:7777/ws",
			ReconnectAttempts: 10,
			ReconnectDelayMS:  1000,
			HandshakeTimeout:  20,
			HealthIntervalSec: 10,
		},
		Auth: AuthConfig{
			CheckTimeoutSec:  5,
			CheckThrottleMin: 5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := os.Getenv("DEVTINDER_API_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("DEVTINDER_WS_URL"); v != "" {
		cfg.Socket.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return cfg, nil
}

// RequestTimeout returns the HTTP client timeout.
func (c ServerConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// ReconnectDelay returns the delay between reconnect attempts.
func (c SocketConfig) ReconnectDelay() time.Duration {
	return time.Duration(c.ReconnectDelayMS) * time.Millisecond
}

// Handshake returns the websocket dial timeout.
func (c SocketConfig) Handshake() time.Duration {
	return time.Duration(c.HandshakeTimeout) * time.Second
}

// HealthInterval returns the period between connection health checks.
func (c SocketConfig) HealthInterval() time.Duration {
	return time.Duration(c.HealthIntervalSec) * time.Second
}

// CheckTimeout returns the auth-check timeout.
func (c AuthConfig) CheckTimeout() time.Duration {
	return time.Duration(c.CheckTimeoutSec) * time.Second
}

// CheckThrottle returns how long a negative auth check is remembered.
func (c AuthConfig) CheckThrottle() time.Duration {
	return time.Duration(c.CheckThrottleMin) * time.Minute
}
