package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally from a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Session SessionConfig
	Export  ExportConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig logging settings.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// SessionConfig settings for the in-memory invoice sessions.
// TTL bounds the lifetime of an abandoned editing session; there is no
// persistence behind the store, so an expired session is simply gone.
type SessionConfig struct {
	TTL time.Duration
}

// ExportConfig settings for PDF export.
// Delay is an artificial pause before generation so a client can surface a
// loading indicator; zero disables it.
type ExportConfig struct {
	Delay time.Duration
}

// Load reads configuration from environment variables (and optionally from a
// .env / config.env file). Env vars take priority. Expected names: APP_ENV,
// HTTP_PORT, LOG_LEVEL, SESSION_TTL_MINUTES, EXPORT_DELAY_MS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error when the file does not exist

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore error when the file does not exist

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gst-invoice-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			TTL: time.Duration(getInt(v, "SESSION_TTL_MINUTES", 240)) * time.Minute,
		},
		Export: ExportConfig{
			Delay: time.Duration(getInt(v, "EXPORT_DELAY_MS", 0)) * time.Millisecond,
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
