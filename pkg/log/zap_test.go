package log_test

import (
	"context"
	"testing"

	"shared-calendar/pkg/log"
)

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	}

	for _, cfg := range cases {
		t.Run(cfg.Level, func(t *testing.T) {
			l := log.Init(cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := log.WithRequestID(context.Background(), "req-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Infof(ctx, "info %s", "x")
			l.Warn(context.Background(), "warn")
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "dropped %v", "value")
}
