package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Source kinds.
const (
	SourceREST   = "rest"
	SourceGoogle = "google"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Where calendars and events come from
	Backend BackendConfig
	Source  SourceConfig

	// Calendar core
	Calendar   CalendarConfig
	Cache      CacheConfig
	Session    SessionConfig
	Revalidate RevalidateConfig
	Prefs      PrefsConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the REST backing store.
type BackendConfig struct {
	URL        string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
}

// SourceConfig selects the event source. Kind is "rest" or "google".
type SourceConfig struct {
	Kind                  string
	GoogleCredentialsPath string
	GoogleTokenPath       string
	LookBack              time.Duration
	LookAhead             time.Duration
}

type CalendarConfig struct {
	Timezone string
}

type CacheConfig struct {
	TTL              time.Duration
	FetchConcurrency int
}

type SessionConfig struct {
	Capacity int
	IdleTTL  time.Duration
}

type RevalidateConfig struct {
	Enabled  bool
	Schedule string
}

type PrefsConfig struct {
	Dir string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backing store
	cfg.Backend.URL = strings.TrimRight(viper.GetString("backend.url"), "/")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.RatePerSec = viper.GetFloat64("backend.rate_per_sec")
	cfg.Backend.Burst = viper.GetInt("backend.burst")

	cfg.Source.Kind = strings.ToLower(viper.GetString("source.kind"))
	cfg.Source.GoogleCredentialsPath = expandEnvVar(viper.GetString("source.google_credentials_path"))
	cfg.Source.GoogleTokenPath = viper.GetString("source.google_token_path")
	cfg.Source.LookBack = viper.GetDuration("source.look_back")
	cfg.Source.LookAhead = viper.GetDuration("source.look_ahead")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Source.GoogleCredentialsPath = googleCreds
	}

	// Calendar core
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.FetchConcurrency = viper.GetInt("cache.fetch_concurrency")
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.IdleTTL = viper.GetDuration("session.idle_ttl")
	cfg.Revalidate.Enabled = viper.GetBool("revalidate.enabled")
	cfg.Revalidate.Schedule = viper.GetString("revalidate.schedule")
	cfg.Prefs.Dir = viper.GetString("prefs.dir")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = expandEnvVar(viper.GetString("webhook.secret"))
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.url", "http://localhost:5000")
	viper.SetDefault("backend.timeout", "15s")
	viper.SetDefault("backend.rate_per_sec", 20)
	viper.SetDefault("backend.burst", 40)

	viper.SetDefault("source.kind", SourceREST)
	viper.SetDefault("source.google_token_path", "token.json")
	viper.SetDefault("source.look_back", "720h")
	viper.SetDefault("source.look_ahead", "4320h")

	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("cache.fetch_concurrency", 8)
	viper.SetDefault("session.capacity", 1000)
	viper.SetDefault("session.idle_ttl", "30m")
	viper.SetDefault("revalidate.enabled", true)
	viper.SetDefault("revalidate.schedule", "@every 1m")
	viper.SetDefault("prefs.dir", "./data/prefs")

	viper.SetDefault("webhook.enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}

func validate(cfg *Config) error {
	switch cfg.Source.Kind {
	case SourceREST:
		if cfg.Backend.URL == "" {
			return fmt.Errorf("backend.url is required for source.kind %q", SourceREST)
		}
	case SourceGoogle:
		if cfg.Source.GoogleCredentialsPath == "" {
			return fmt.Errorf("source.google_credentials_path is required for source.kind %q", SourceGoogle)
		}
	default:
		return fmt.Errorf("unknown source.kind %q", cfg.Source.Kind)
	}
	if _, err := time.LoadLocation(cfg.Calendar.Timezone); err != nil {
		return fmt.Errorf("invalid calendar.timezone: %w", err)
	}
	if cfg.Webhook.Enabled && cfg.Webhook.Secret == "" {
		fmt.Println("Warning: webhook is enabled without a secret, every notification will be rejected")
	}
	return nil
}

// splitList splits a comma separated value, since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
