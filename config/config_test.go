package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.Kind != SourceREST || cfg.Cache.TTL != 5*time.Minute || cfg.Session.IdleTTL != 30*time.Minute {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Revalidate.Schedule != "@every 1m" || cfg.Cache.FetchConcurrency != 8 {
		t.Errorf("unexpected core defaults %+v %+v", cfg.Revalidate, cfg.Cache)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://calendar.internal/")
	t.Setenv("WEBHOOK_ALLOWED_IPS", "10.0.0.1, ,10.0.0.2")
	t.Setenv("WEBHOOK_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.URL != "http://calendar.internal" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Backend.URL)
	}
	if len(cfg.Webhook.AllowedIPs) != 2 || cfg.Webhook.AllowedIPs[1] != "10.0.0.2" {
		t.Errorf("unexpected allowed ips %v", cfg.Webhook.AllowedIPs)
	}
	if cfg.Webhook.Secret != "s3cret" {
		t.Errorf("unexpected secret %q", cfg.Webhook.Secret)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Backend:  BackendConfig{URL: "http://x"},
			Source:   SourceConfig{Kind: SourceREST},
			Calendar: CalendarConfig{Timezone: "UTC"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "rest ok", mutate: func(c *Config) {}},
		{name: "rest without url", mutate: func(c *Config) { c.Backend.URL = "" }, wantErr: true},
		{name: "google without credentials", mutate: func(c *Config) { c.Source.Kind = SourceGoogle }, wantErr: true},
		{name: "google ok", mutate: func(c *Config) {
			c.Source.Kind = SourceGoogle
			c.Source.GoogleCredentialsPath = "creds.json"
		}},
		{name: "unknown kind", mutate: func(c *Config) { c.Source.Kind = "caldav" }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Calendar.Timezone = "Mars/Base" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := validate(cfg); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("CAL_TEST_SECRET", "from-env")
	if got := expandEnvVar("${CAL_TEST_SECRET}"); got != "from-env" {
		t.Errorf("expected expansion, got %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("plain values must pass through, got %q", got)
	}
}
