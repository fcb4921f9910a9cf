package log_test

import (
	"context"
	"testing"

	"timesheet-assistant/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "console debug", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "json production", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger, got nil")
			}
			ctx := context.WithValue(context.Background(), log.RequestIDKey, "req-1")
			l.Infof(ctx, "hello %s", "world")
			l.Debug(ctx, "debug line")
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "discarded %d", 1)
}
