// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Poller     PollerConfig     `mapstructure:"poller"`
	Device     DeviceConfig     `mapstructure:"device"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Cleanup    CleanupConfig    `mapstructure:"cleanup"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
	Logger     LoggerConfig     `mapstructure:"logger"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`

	MigrationsPath string `mapstructure:"migrations_path"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// TelegramConfig configures the Bot API client. BotToken and ChatID only seed
// the runtime settings store when it has no credentials yet.
type TelegramConfig struct {
	APIEndpoint   string        `mapstructure:"api_endpoint"`
	PollTimeout   time.Duration `mapstructure:"poll_timeout"`
	RequestMargin time.Duration `mapstructure:"request_margin"`
	BotToken      string        `mapstructure:"bot_token"`
	ChatID        string        `mapstructure:"chat_id"`
}

type PollerConfig struct {
	BackoffFloor   time.Duration `mapstructure:"backoff_floor"`
	BackoffCeiling time.Duration `mapstructure:"backoff_ceiling"`
	IdleInterval   time.Duration `mapstructure:"idle_interval"`
	DrainPause     time.Duration `mapstructure:"drain_pause"`
}

// DeviceConfig points at the device bridge that performs SMS sends.
type DeviceConfig struct {
	URL            string               `mapstructure:"url"`
	AuthKey        string               `mapstructure:"auth_key"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type DispatcherConfig struct {
	QueueSize      int                  `mapstructure:"queue_size"`
	RatePerSecond  float64              `mapstructure:"rate_per_second"`
	Burst          int                  `mapstructure:"burst"`
	SendTimeout    time.Duration        `mapstructure:"send_timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type CleanupConfig struct {
	IntervalMinutes  int `mapstructure:"interval_minutes"`
	RetentionMinutes int `mapstructure:"retention_minutes"`
}

type MiddlewareConfig struct {
	RateLimit      int    `mapstructure:"rate_limit"`
	RateLimitBurst int    `mapstructure:"rate_limit_burst"`
	DeviceAPIKey   string `mapstructure:"device_api_key"`
}

// LoggerConfig selects the zap preset. Entries at PersistMin or above are also
// written to app_logs.
type LoggerConfig struct {
	Mode          string `mapstructure:"mode"`
	Level         string `mapstructure:"level"`
	PersistMin    string `mapstructure:"persist_min"`
	PersistBuffer int    `mapstructure:"persist_buffer"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.db", 0)
	v.SetDefault("telegram.api_endpoint", "https://api.telegram.org/bot%s/%s")
	v.SetDefault("telegram.poll_timeout", "30s")
	v.SetDefault("telegram.request_margin", "10s")
	v.SetDefault("poller.backoff_floor", "2s")
	v.SetDefault("poller.backoff_ceiling", "60s")
	v.SetDefault("poller.idle_interval", "10s")
	v.SetDefault("poller.drain_pause", "500ms")
	v.SetDefault("device.timeout", 15)
	v.SetDefault("device.circuit_breaker.max_requests", 3)
	v.SetDefault("device.circuit_breaker.interval", 60)
	v.SetDefault("device.circuit_breaker.timeout", 60)
	v.SetDefault("device.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("device.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("dispatcher.queue_size", 256)
	v.SetDefault("dispatcher.rate_per_second", 1)
	v.SetDefault("dispatcher.burst", 20)
	v.SetDefault("dispatcher.send_timeout", "15s")
	v.SetDefault("dispatcher.circuit_breaker.max_requests", 1)
	v.SetDefault("dispatcher.circuit_breaker.interval", 60)
	v.SetDefault("dispatcher.circuit_breaker.timeout", 30)
	v.SetDefault("dispatcher.circuit_breaker.failure_ratio", 0.8)
	v.SetDefault("dispatcher.circuit_breaker.consecutive_fails", 10)
	v.SetDefault("cleanup.interval_minutes", 15)
	v.SetDefault("cleanup.retention_minutes", 30)
	v.SetDefault("middleware.rate_limit", 50)
	v.SetDefault("middleware.rate_limit_burst", 100)
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.persist_min", "info")
	v.SetDefault("logger.persist_buffer", 512)
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Telegram.PollTimeout <= 0 {
		return fmt.Errorf("telegram.poll_timeout must be positive")
	}
	if c.Poller.BackoffFloor <= 0 || c.Poller.BackoffCeiling < c.Poller.BackoffFloor {
		return fmt.Errorf("poller backoff must satisfy 0 < floor <= ceiling")
	}
	if c.Cleanup.IntervalMinutes <= 0 || c.Cleanup.RetentionMinutes <= 0 {
		return fmt.Errorf("cleanup interval and retention must be positive")
	}
	if c.Middleware.DeviceAPIKey == "" {
		return fmt.Errorf("middleware.device_api_key is required")
	}
	return nil
}

// HTTPTimeout is the client timeout for Bot API calls. It sits above the
// long-poll timeout so a slow but valid getUpdates response is not cut off.
func (t *TelegramConfig) HTTPTimeout() time.Duration {
	return t.PollTimeout + t.RequestMargin
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL URL form used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
