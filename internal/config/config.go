package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress      string
	GRPCAddress        string
	UpstreamURL        string
	UpstreamTimeout    time.Duration
	UpstreamEmail      string
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	EnableGzip         bool
	LogLevel           string
}

// флаг -> ключ конфигурации
var flagKeys = map[string]string{
	"address":              "SERVER_ADDRESS",
	"grpc-address":         "GRPC_ADDRESS",
	"upstream-url":         "UPSTREAM_URL",
	"upstream-timeout":     "UPSTREAM_TIMEOUT",
	"upstream-email":       "UPSTREAM_EMAIL",
	"breaker-max-failures": "BREAKER_MAX_FAILURES",
	"breaker-open-timeout": "BREAKER_OPEN_TIMEOUT",
	"gzip":                 "ENABLE_GZIP",
	"log-level":            "LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "localhost:8080") // Значения по умолчанию
	v.SetDefault("GRPC_ADDRESS", "")
	v.SetDefault("UPSTREAM_URL", "https://api.mymemory.translated.net/get")
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("UPSTREAM_EMAIL", "")
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)
	v.SetDefault("ENABLE_GZIP", true)
	v.SetDefault("LOG_LEVEL", "info")
}

// BindFlags регистрирует флаги сервера и связывает их с ключами viper.
// Флаги без значения не перекрывают переменные окружения.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.StringP("address", "a", "", "server address")
	fs.String("grpc-address", "", "gRPC server address (empty disables gRPC)")
	fs.String("upstream-url", "", "MyMemory API endpoint")
	fs.Duration("upstream-timeout", 0, "timeout for one upstream call")
	fs.String("upstream-email", "", "contact email sent to MyMemory (raises daily quota)")
	fs.Uint32("breaker-max-failures", 0, "consecutive upstream failures before the circuit opens (0 disables)")
	fs.Duration("breaker-open-timeout", 0, "how long the circuit stays open")
	fs.Bool("gzip", true, "enable gzip middleware")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.StringP("config", "c", "", "path to config file (json, yaml, toml)")

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return v.BindPFlag("CONFIG", fs.Lookup("config"))
}

// Load собирает конфигурацию: значения по умолчанию, файл конфигурации,
// .env, переменные окружения и флаги (в порядке возрастания приоритета).
func Load(v *viper.Viper) (*Config, error) {
	// .env необязателен и не перекрывает уже заданные переменные окружения
	_ = godotenv.Load()

	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	cfg := &Config{
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		GRPCAddress:        v.GetString("GRPC_ADDRESS"),
		UpstreamURL:        v.GetString("UPSTREAM_URL"),
		UpstreamTimeout:    v.GetDuration("UPSTREAM_TIMEOUT"),
		UpstreamEmail:      v.GetString("UPSTREAM_EMAIL"),
		BreakerMaxFailures: v.GetUint32("BREAKER_MAX_FAILURES"),
		BreakerOpenTimeout: v.GetDuration("BREAKER_OPEN_TIMEOUT"),
		EnableGzip:         v.GetBool("ENABLE_GZIP"),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return errors.New("server address must not be empty")
	}
	u, err := url.Parse(cfg.UpstreamURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid upstream URL %q", cfg.UpstreamURL)
	}
	if cfg.UpstreamTimeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}
	if cfg.BreakerMaxFailures > 0 && cfg.BreakerOpenTimeout <= 0 {
		return errors.New("breaker open timeout must be positive")
	}
	return nil
}
